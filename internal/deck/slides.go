package deck

import (
	"fmt"

	"deckgen/internal/palette"
	"deckgen/internal/pptx"

	"rsc.io/qr"
)

func (b *builder) titleSlide() {
	s := b.prs.AddSlide()

	tb := s.AddTextBox(pptx.Box{X: 0.75, Y: 2, W: 8, H: 2})
	tb.Frame.WordWrap = true
	p := tb.Frame.AddParagraph()
	p.AddRun(pptx.Run{Text: b.cfg.Product.Name, Size: 48, Bold: true, Color: b.color(palette.Primary)})
	p = tb.Frame.AddParagraph()
	p.AddRun(pptx.Run{Text: b.cfg.Product.Tagline, Size: 24, Color: b.color(palette.Muted)})

	x := 0.75
	for _, f := range b.cfg.Features {
		b.card(s, x, 5.0, 3.6, 1.5, f.Title, f.Description, b.color(palette.Primary), b.color(palette.Border))
		x += 3.9
	}

	b.notes(s, "title")
}

func (b *builder) problemSlide() {
	s := b.prs.AddSlide()
	b.contextLabel(s, "The Problem", b.color(palette.Danger))
	b.actionTitle(s, b.cfg.Problem.Title)

	y := 2.8
	for _, point := range b.cfg.Problem.PainPoints {
		b.text(s, pptx.Box{X: 0.75, Y: y, W: 5, H: 0.4}, "❌  "+point, 16, false, b.color(palette.Secondary))
		y += 0.5
	}

	risk := s.AddRoundedRect(pptx.Box{X: 6.5, Y: 2.5, W: 5.5, H: 3})
	fill := b.color(palette.DangerTint)
	line := b.color(palette.Danger)
	risk.Fill = &fill
	risk.Line = &line
	risk.LineWidth = 2

	b.text(s, pptx.Box{X: 6.8, Y: 2.8, W: 5, H: 0.5}, "⚠️  THE RISK", 14, true, b.color(palette.Danger))
	tb := b.text(s, pptx.Box{X: 6.8, Y: 3.4, W: 5, H: 1.5}, b.cfg.Problem.Risk, 16, false, b.color(palette.Secondary))
	tb.Frame.Paragraphs[0].LineSpacing = 1.5

	b.notes(s, "problem")
}

func (b *builder) scaleSlide() {
	s := b.prs.AddSlide()
	b.contextLabel(s, "The Scale", b.color(palette.Primary))
	b.actionTitle(s, b.cfg.Scale.Title)

	const cardWidth = 3.7
	x := 0.75
	for _, stat := range b.cfg.Scale.Stats {
		statColor := b.color(palette.Primary)
		if stat.Color != "" {
			statColor = b.color(stat.Color)
		}

		card := s.AddRoundedRect(pptx.Box{X: x, Y: 2.8, W: cardWidth, H: 2.2})
		var valueColor, labelColor pptx.Color
		if stat.Filled {
			card.Fill = &statColor
			valueColor = b.color(palette.White)
			labelColor = b.color(palette.PrimaryTint)
		} else {
			white := b.color(palette.White)
			border := b.color(palette.Border)
			card.Fill = &white
			card.Line = &border
			card.LineWidth = 2
			valueColor = statColor
			labelColor = b.color(palette.Muted)
		}

		value := b.text(s, pptx.Box{X: x, Y: 3.2, W: cardWidth, H: 1}, stat.Value, 56, true, valueColor)
		value.Frame.Paragraphs[0].Align = pptx.AlignCenter
		label := b.text(s, pptx.Box{X: x, Y: 4.3, W: cardWidth, H: 0.5}, stat.Label, 14, false, labelColor)
		label.Frame.Paragraphs[0].Align = pptx.AlignCenter

		x += cardWidth + 0.3
	}

	b.notes(s, "scale")
}

func (b *builder) solutionSlide() {
	s := b.prs.AddSlide()
	b.contextLabel(s, "The Solution", b.color(palette.Primary))
	b.actionTitle(s, b.cfg.Solution.Title)

	stages := b.cfg.Solution.Stages
	x := 2.0
	for i, stage := range stages {
		// The middle stage is the product and gets the highlight.
		isMain := i == len(stages)/2

		box := s.AddRoundedRect(pptx.Box{X: x, Y: 3.5, W: 2.5, H: 1.2})
		var textColor pptx.Color
		if isMain {
			primary := b.color(palette.Primary)
			box.Fill = &primary
			textColor = b.color(palette.White)
		} else {
			gray := b.color(palette.LightGray)
			border := b.color(palette.Border)
			box.Fill = &gray
			box.Line = &border
			textColor = b.color(palette.Secondary)
		}

		box.Frame.WordWrap = true
		box.Frame.Anchor = pptx.AnchorMiddle
		p := box.Frame.AddParagraph()
		p.Align = pptx.AlignCenter
		p.AddRun(pptx.Run{Text: stage, Size: 16, Bold: true, Color: textColor})

		if i < len(stages)-1 {
			b.text(s, pptx.Box{X: x + 2.7, Y: 3.8, W: 0.5, H: 0.5}, "→", 28, false, b.color(palette.Muted))
		}

		x += 3.2
	}

	b.notes(s, "solution")
}

func (b *builder) demoSlides() {
	keys := b.cfg.Demo.Screenshots
	if len(keys) == 0 {
		keys = []string{""}
	}
	if len(keys) > maxDemoSlides {
		keys = keys[:maxDemoSlides]
	}

	for _, key := range keys {
		s := b.prs.AddSlide()
		b.contextLabel(s, "Live Demo", b.color(palette.Accent))
		b.actionTitle(s, b.cfg.Demo.Title)
		b.screenshotInto(s, key, pptx.Box{X: 1.5, Y: 2.4, W: 10.3, H: 4.4})
		b.notes(s, "demo")
	}
}

func (b *builder) proofSlide() {
	s := b.prs.AddSlide()
	b.contextLabel(s, "The Proof", b.color(palette.Accent))
	b.actionTitle(s, b.cfg.Proof.Title)

	x := 0.75
	for _, m := range b.cfg.Proof.Metrics {
		b.card(s, x, 2.8, 3.6, 2.0, "✓ "+m.Label, "", b.color(palette.Accent), b.color(palette.Border))
		b.text(s, pptx.Box{X: x + 0.2, Y: 3.4, W: 3.2, H: 0.8}, m.Value, 36, true, b.color(palette.Secondary))
		x += 3.9
	}

	b.notes(s, "proof")
}

func (b *builder) roadmapSlide() {
	s := b.prs.AddSlide()
	b.contextLabel(s, "Roadmap", b.color(palette.Primary))
	b.actionTitle(s, b.cfg.Roadmap.Title)

	y := 2.8
	for _, item := range b.cfg.Roadmap.Completed {
		b.text(s, pptx.Box{X: 0.75, Y: y, W: 5, H: 0.4}, "✓  "+item, 16, false, b.color(palette.Accent))
		y += 0.5
	}

	gaps := s.AddRoundedRect(pptx.Box{X: 6.5, Y: 2.5, W: 5.5, H: 3})
	white := b.color(palette.White)
	warning := b.color(palette.Warning)
	gaps.Fill = &white
	gaps.Line = &warning
	gaps.LineWidth = 2

	b.text(s, pptx.Box{X: 6.8, Y: 2.7, W: 5, H: 0.5}, "⚠️  Honest Gaps", 14, true, b.color(palette.Warning))
	y = 3.3
	for i, gap := range b.cfg.Roadmap.Gaps {
		b.text(s, pptx.Box{X: 6.8, Y: y, W: 5, H: 0.4}, fmt.Sprintf("%d. %s", i+1, gap), 14, false, b.color(palette.Muted))
		y += 0.5
	}

	b.notes(s, "roadmap")
}

func (b *builder) askSlide() error {
	s := b.prs.AddSlide()
	b.contextLabel(s, "The Ask", b.color(palette.Primary))
	b.actionTitle(s, b.cfg.Ask.Title)

	b.card(s, 0.75, 2.5, 5.3, 1.5, "💬 Feedback Request", b.cfg.Ask.FeedbackQuestion,
		b.color(palette.Primary), b.color(palette.Border))
	b.card(s, 6.4, 2.5, 5.3, 1.5, "🎯 Priority Question", b.cfg.Ask.PriorityQuestion,
		b.color(palette.Warning), b.color(palette.Border))

	thanks := b.text(s, pptx.Box{X: 0.75, Y: 5.5, W: 11.5, H: 1}, "Thank You", 48, true, b.color(palette.Primary))
	thanks.Frame.Paragraphs[0].Align = pptx.AlignCenter
	questions := b.text(s, pptx.Box{X: 0.75, Y: 6.3, W: 11.5, H: 0.5}, "Questions?", 20, false, b.color(palette.Muted))
	questions.Frame.Paragraphs[0].Align = pptx.AlignCenter

	if url := b.cfg.Ask.ShareURL; url != "" {
		code, err := qr.Encode(url, qr.M)
		if err != nil {
			return fmt.Errorf("share url qr: %w", err)
		}
		s.AddPicture(pptx.Box{X: 11.9, Y: 5.4, W: 1.1, H: 1.1}, code.PNG(), "png")
		caption := b.text(s, pptx.Box{X: 11.55, Y: 6.55, W: 1.8, H: 0.3}, "Scan to open", 9, false, b.color(palette.Muted))
		caption.Frame.Paragraphs[0].Align = pptx.AlignCenter
	}

	b.notes(s, "ask")
	return nil
}

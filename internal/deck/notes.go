package deck

// defaultNotes carries the presenter script for each slide. Config
// overrides replace entries wholesale.
var defaultNotes = map[string]string{
	"title": "TIMING: 30 seconds\n" +
		"SAY: State your one-line value prop\n" +
		"TRANSITION: \"Here's the problem we're solving...\"",
	"problem": "TIMING: 45 seconds\n" +
		"SAY: Make them feel the pain\n" +
		"TRANSITION: \"Here's the scale...\"",
	"scale": "TIMING: 30 seconds\n" +
		"SAY: Show the magnitude of the problem or your solution\n" +
		"TRANSITION: \"Here's how it works...\"",
	"solution": "TIMING: 45 seconds\n" +
		"SAY: High-level architecture - don't go too deep\n" +
		"SHOW: Point to each stage\n" +
		"TRANSITION: \"Let me show you this working...\"",
	"demo": "TIMING: 2 minutes\n" +
		"SAY: \"Watch what happens when...\"\n" +
		"SHOW: Run your live demo or show the screenshot\n" +
		"TRANSITION: \"Here's the proof it works...\"",
	"proof": "TIMING: 30 seconds\n" +
		"SAY: Back up your claims with numbers\n" +
		"TRANSITION: \"Here's the roadmap...\"",
	"roadmap": "TIMING: 30 seconds\n" +
		"SAY: Be honest about gaps - it builds trust\n" +
		"TRANSITION: \"Here's my ask...\"",
	"ask": "TIMING: 30 seconds\n" +
		"SAY: Be specific about what you need\n" +
		"ASK: Open it up for questions\n" +
		"END: Thank them for their time",
}

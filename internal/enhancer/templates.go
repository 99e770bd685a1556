package enhancer

// Fixed prose templates injected by the stages. Canned by design: the
// pipeline performs no generation, only placement of these strings.

const characterDepthTemplate = "%s carried the weight of unspoken histories, the kind that surfaced only in unguarded moments and shaped every choice without ever being named."

const plotStakesParagraph = "Beneath the surface of these events ran a current of consequence. Every choice narrowed the paths still open, and somewhere past the edge of what anyone could see, the cost of failure was quietly compounding."

var sensorySentences = map[string]string{
	"visual":    "Light fell unevenly across the scene, picking out edges and surfaces that had gone unnoticed until now.",
	"auditory":  "Small sounds filled the spaces between moments: a distant hum, the faint settling of the world going about its business.",
	"tactile":   "The air itself had a texture, cool against skin, carrying the faint pressure of the surrounding space.",
	"olfactory": "A faint smell hung in the air, familiar and hard to place, the kind that belongs to a particular room and no other.",
}

const mundaneObjectParagraph = "On a nearby surface sat an ordinary object, worn smooth by handling, the sort of thing nobody would mention and everybody would miss. It held its place with the quiet insistence of the everyday."

const timeDilationSentence = "Time thickened, each second stretching wide enough to hold every detail at once."

const heightenedSensesSentence = "Every sense sharpened to a point: breath, pulse, the exact distance to everything that mattered."

const environmentParticipantSentence = "The surroundings refused to stay neutral, every wall and surface becoming an obstacle or a weapon in turn."

const stillnessContrastSentence = "Then, for one suspended instant, everything went utterly still."

const topUpParagraph = "There was more to this moment than its surface suggested, and anyone paying attention could feel the extra weight it carried: the history pressing in behind it and the consequences fanning out ahead."

// transitionPhrases is the fixed list of ten openers the smoothing
// stage chooses from uniformly.
var transitionPhrases = [10]string{
	"Meanwhile, ",
	"Moments later, ",
	"Before long, ",
	"In the quiet that followed, ",
	"At the same time, ",
	"Soon after, ",
	"Without warning, ",
	"As if in answer, ",
	"In the distance, ",
	"All the while, ",
}

// synonymTable maps the ten supported headwords to their replacement
// candidates. Words outside this table are never rewritten.
var synonymTable = map[string][]string{
	"looked":    {"gazed", "glanced", "peered", "stared"},
	"walked":    {"strolled", "paced", "wandered", "strode"},
	"small":     {"tiny", "slight", "modest", "compact"},
	"large":     {"vast", "immense", "sizable", "broad"},
	"quickly":   {"swiftly", "rapidly", "briskly", "hastily"},
	"slowly":    {"gradually", "unhurriedly", "languidly", "deliberately"},
	"beautiful": {"lovely", "striking", "elegant", "radiant"},
	"important": {"crucial", "significant", "vital", "essential"},
	"thought":   {"considered", "reflected", "pondered", "mused"},
	"turned":    {"pivoted", "swiveled", "wheeled", "rotated"},
}

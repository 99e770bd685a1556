package analyzer

// Fixed keyword tables backing the heuristics. These are static
// configuration, loaded once; nothing mutates them at runtime.

var introductionCues = []string{
	"once upon",
	"it began",
	"started",
	"at first",
	"introduction",
	"initially",
	"one morning",
	"long ago",
	"in the beginning",
	"first met",
}

var climaxCues = []string{
	"suddenly",
	"at that moment",
	"everything changed",
	"confronted",
	"showdown",
	"climax",
	"no turning back",
	"final battle",
	"crucial",
	"decisive",
}

var resolutionCues = []string{
	"finally",
	"in the end",
	"afterwards",
	"resolved",
	"at last",
	"settled",
	"aftermath",
	"ever after",
	"concluded",
	"peace returned",
}

var firstPersonPronouns = map[string]struct{}{
	"i": {}, "me": {}, "my": {}, "mine": {},
	"we": {}, "us": {}, "our": {}, "ours": {},
}

var secondPersonPronouns = map[string]struct{}{
	"you": {}, "your": {}, "yours": {},
}

var thirdPersonPronouns = map[string]struct{}{
	"he": {}, "him": {}, "his": {},
	"she": {}, "her": {}, "hers": {},
	"they": {}, "them": {}, "their": {}, "theirs": {},
}

var actionVerbs = []string{
	"ran", "run", "jumped", "leaped", "grabbed", "threw", "struck",
	"fought", "dodged", "sprinted", "slammed", "crashed", "punched",
	"kicked", "lunged", "ducked", "charged", "swung", "smashed",
	"bolted", "scrambled", "tackled", "fled",
}

var speechTagVerbs = []string{
	"said", "asked", "replied", "whispered", "shouted", "muttered",
	"exclaimed", "answered", "murmured", "called", "yelled", "demanded",
}

var positiveMoodWords = []string{
	"happy", "joy", "smile", "laughed", "laughter", "wonderful",
	"bright", "warm", "delight", "hope", "love", "beautiful",
}

var negativeMoodWords = []string{
	"sad", "angry", "fear", "afraid", "dark", "pain", "terrible",
	"cried", "grief", "despair", "bitter", "cold", "lonely",
}

var suspenseMoodWords = []string{
	"suddenly", "mysterious", "shadow", "strange", "silence",
	"waited", "lurked", "unknown", "tension", "dread", "crept",
	"something was wrong",
}

var settingKeywords = []string{
	"room", "house", "street", "forest", "city", "mountain", "sky",
	"building", "field", "office", "garden", "kitchen", "road",
	"village", "river", "beach", "hall", "valley", "alley", "castle",
}

// Sensory keyword categories, keyed by category name. The order of
// sensoryCategoryOrder drives both need evaluation and which fixed
// sentence the environmental stage injects for a missing category.
var sensoryCategoryOrder = []string{"visual", "auditory", "tactile", "olfactory"}

var sensoryKeywords = map[string][]string{
	"visual":    {"saw", "looked", "watched", "bright", "color", "light", "glinted", "gleamed", "shimmered", "stared"},
	"auditory":  {"heard", "sound", "noise", "echo", "whisper", "hum", "creak", "rustle", "rang", "roared"},
	"tactile":   {"felt", "touch", "rough", "smooth", "warm", "cool", "texture", "pressed", "gritty", "soft"},
	"olfactory": {"smell", "scent", "aroma", "odor", "fragrance", "stench", "musty", "perfume"},
}

var plotIndicatorKeywords = []string{
	"secret", "danger", "mission", "threat", "promise", "betrayal",
	"mystery", "plan", "warning", "stakes", "deadline", "risk",
}

var timeManipulationCues = []string{
	"slowed", "slow motion", "instant", "moment stretched", "froze",
	"heartbeat", "split second", "eternity", "time seemed",
}

var environmentInteractionCues = []string{
	"wall", "ground", "floor", "door", "debris", "table", "railing",
	"window", "dust", "shattered", "against the",
}

var transitionWords = []string{
	"however", "meanwhile", "therefore", "furthermore", "later",
	"afterward", "moreover", "consequently", "eventually", "then",
	"instead", "nevertheless",
}

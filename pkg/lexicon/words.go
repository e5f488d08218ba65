package lexicon

// defaultCommonWords is the embedded high-frequency English baseline
// (roughly the first 600 words a learner is expected to know on sight).
// A custom baseline can be supplied with LoadFile.
var defaultCommonWords = []string{
	"a", "able", "about", "add", "after", "afternoon", "again", "against",
	"age", "ago", "agree", "air", "all", "allow", "almost", "alone",
	"along", "already", "also", "although", "always", "am", "american",
	"among", "an", "and", "animal", "another", "answer", "any", "anyone",
	"anything", "appear", "apple", "area", "arm", "around", "arrive", "art",
	"as", "ask", "asked", "at", "attention", "aunt", "autumn", "away",

	"baby", "back", "bad", "bag", "ball", "bank", "base", "be", "beautiful",
	"became", "because", "bed", "been", "before", "begin", "behind",
	"being", "believe", "bell", "belong", "below", "beside", "best",
	"better", "between", "big", "bird", "bit", "black", "blue", "boat",
	"body", "book", "born", "borrow", "both", "bottle", "bottom", "box",
	"boy", "bread", "break", "breakfast", "bridge", "bring", "brother",
	"brown", "build", "burn", "bus", "business", "but", "buy", "by",

	"call", "came", "camera", "can", "cannot", "capital", "car", "card",
	"care", "carry", "case", "catch", "cause", "center", "certain", "chair",
	"chance", "change", "cheap", "check", "child", "choose", "city",
	"class", "clean", "clear", "climb", "clock", "close", "clothes",
	"cloud", "cold", "collect", "college", "color", "come", "common",
	"community", "company", "complete", "computer", "continue", "cook",
	"cool", "copy", "corner", "correct", "cost", "could", "count",
	"country", "course", "cover", "cross", "crowd", "cup", "cut",

	"dance", "dark", "date", "daughter", "day", "dead", "dear", "decide",
	"deep", "desk", "did", "die", "different", "dinner", "direction",
	"dirty", "discover", "distance", "do", "doctor", "dog", "door",
	"double", "doubt", "down", "draw", "dream", "dress", "drink", "drive",
	"drop", "dry", "duck", "during",

	"each", "ear", "early", "earth", "east", "easy", "eat", "edge", "egg",
	"eight", "else", "end", "enjoy", "enough", "enter", "even", "evening",
	"event", "ever", "every", "exact", "example", "except", "excuse",
	"exercise", "expect", "explain", "eye",

	"face", "fact", "fall", "family", "famous", "far", "fast", "fat",
	"father", "favorite", "fear", "feel", "feet", "fell", "felt", "few",
	"field", "fight", "fill", "film", "find", "fine", "finger", "finish",
	"fire", "first", "fish", "fit", "five", "fix", "floor", "flower", "fly",
	"follow", "food", "foot", "for", "force", "forest", "forget", "form",
	"found", "four", "free", "fresh", "friend", "from", "front", "fruit",
	"full", "fun", "funny", "future",

	"game", "garden", "gate", "general", "get", "girl", "give", "glad",
	"glass", "go", "going", "gold", "gone", "good", "government", "grass",
	"great", "green", "ground", "group", "grow", "guess", "guy",

	"hair", "half", "hall", "hand", "happen", "happy", "hard", "has", "hat",
	"hate", "have", "he", "head", "health", "hear", "heart", "heavy",
	"help", "her", "here", "high", "hill", "him", "himself", "his",
	"history", "hit", "hold", "home", "hope", "horse", "hot", "hour",
	"house", "how", "however", "hundred", "hungry", "hurry", "hurt",

	"i", "ice", "idea", "if", "imagine", "important", "in", "include",
	"information", "inside", "instead", "interest", "into", "island",
	"issue", "it", "its",

	"job", "join", "jump", "just",

	"keep", "kid", "kill", "kind", "kitchen", "knee", "knew", "know",

	"lady", "lake", "land", "language", "large", "last", "later", "laugh",
	"law", "lay", "lead", "leaf", "learn", "least", "leave", "left", "leg",
	"lesson", "let", "letter", "level", "library", "lie", "life", "lift",
	"light", "like", "line", "list", "listen", "little", "live", "local",
	"lonely", "long", "look", "looked", "lose", "lost", "lot", "loud",
	"love", "low", "luck", "lunch",

	"machine", "made", "mail", "main", "make", "man", "mane", "many", "map",
	"march", "market", "matter", "may", "maybe", "me", "meal", "mean",
	"measure", "meat", "meet", "member", "men", "might", "million",
	"minute", "moment", "money", "month", "more", "morning", "most",
	"mother", "move", "mr", "much", "must", "my",

	"name", "national", "never", "new", "next", "night", "no", "not", "now",
	"number",

	"of", "off", "offer", "office", "often", "old", "on", "once", "one",
	"only", "open", "or", "other", "others", "our", "out", "over", "own",

	"parent", "part", "party", "pay", "people", "person", "place", "play",
	"point", "political", "power", "president", "problem", "program",
	"provide", "put",

	"question",

	"read", "real", "really", "reason", "research", "result", "right",
	"room", "run",

	"said", "same", "saw", "say", "school", "see", "seem", "sentence",
	"service", "set", "several", "she", "should", "show", "side", "since",
	"sit", "small", "so", "some", "something", "sound", "stand", "start",
	"started", "state", "still", "story", "student", "students", "study",
	"such", "system",

	"take", "talk", "teacher", "team", "tell", "than", "that", "the",
	"their", "them", "then", "there", "these", "they", "thing", "think",
	"this", "those", "though", "thought", "three", "through", "time", "to",
	"today", "together", "too", "took", "turn", "two",

	"under", "until", "up", "us", "use",

	"very",

	"walk", "want", "war", "was", "water", "way", "week", "well", "went",
	"what", "when", "where", "which", "while", "white", "who", "why",
	"will", "win", "with", "within", "without", "word", "words", "work",
	"world", "would", "write",

	"year", "yes", "yet", "you", "young", "your",
}

// defaultAcademicWords marks discipline-neutral academic and non-fiction
// vocabulary. Presence of these words raises academic density rather than
// perceived difficulty.
var defaultAcademicWords = []string{
	"analysis", "approach", "argument", "aspect", "assessment", "category",
	"characteristic", "classification", "comparison", "concept",
	"conclusion", "contrast", "correlation", "criterion", "data",
	"definition", "description", "difference", "dimension", "discussion",
	"element", "evaluation", "evidence", "explanation", "factor",
	"framework", "function", "hypothesis", "implication", "interpretation",
	"investigation", "measurement", "methodology", "observation",
	"parameter", "perspective", "phenomenon", "principle", "process",
	"relationship", "research", "significance", "similarity", "strategy",
	"structure", "study", "theory", "variable",
}

package services

// Curated skill taxonomy and supporting tables. Everything here is loaded
// once at startup and treated as read-only shared data.

// professionalSkills is the curated set of normalized skill terms the
// extractor matches against. Multi-word entries are matched via n-grams.
var professionalSkills = map[string]bool{
	// Programming languages
	"python": true, "java": true, "javascript": true, "typescript": true,
	"c++": true, "c#": true, "php": true, "ruby": true, "go": true,
	"rust": true, "swift": true, "kotlin": true, "scala": true, "r": true,
	"matlab": true, "sql": true, "html": true, "css": true, "bash": true,
	"powershell": true,

	// Frameworks and libraries
	"react": true, "angular": true, "vue": true, "node.js": true,
	"express": true, "django": true, "flask": true, "spring": true,
	"laravel": true, "rails": true, "asp.net": true, "jquery": true,
	"bootstrap": true, "tailwind": true, "tensorflow": true,
	"pytorch": true, "pandas": true, "numpy": true, "scikit-learn": true,
	"keras": true, "opencv": true, "fiber": true, "gin": true,

	// Technologies and tools
	"docker": true, "kubernetes": true, "jenkins": true, "git": true,
	"github": true, "gitlab": true, "aws": true, "azure": true, "gcp": true,
	"terraform": true, "ansible": true, "chef": true, "puppet": true,
	"vagrant": true, "nginx": true, "apache": true, "redis": true,
	"elasticsearch": true, "mongodb": true, "postgresql": true,
	"mysql": true, "oracle": true, "cassandra": true, "kafka": true,
	"hadoop": true, "spark": true, "rabbitmq": true, "grpc": true,

	// Methodologies and concepts
	"agile": true, "scrum": true, "kanban": true, "devops": true,
	"ci/cd": true, "tdd": true, "bdd": true, "microservices": true,
	"rest api": true, "graphql": true, "soap": true, "oauth": true,
	"jwt": true, "ssl": true, "https": true, "encryption": true,
	"machine learning": true, "deep learning": true,
	"artificial intelligence": true, "data science": true,
	"big data": true, "cloud computing": true, "blockchain": true,
	"iot": true, "cybersecurity": true, "data analysis": true,
	"data visualization": true,

	// Soft skills
	"leadership": true, "project management": true, "team management": true,
	"communication": true, "problem solving": true,
	"analytical thinking": true, "strategic planning": true,
	"stakeholder management": true, "mentoring": true,
	"cross-functional collaboration": true, "client management": true,
	"vendor management": true, "adaptability": true, "creativity": true,
	"critical thinking": true, "negotiation": true, "time management": true,
	"attention to detail": true, "innovation": true,
}

// skillSynonyms maps shorthand forms to their canonical taxonomy entry.
// Applied during normalization, before exact matching.
var skillSynonyms = map[string]string{
	"js":              "javascript",
	"ts":              "typescript",
	"golang":          "go",
	"k8s":             "kubernetes",
	"postgres":        "postgresql",
	"ml":              "machine learning",
	"dl":              "deep learning",
	"ai":              "artificial intelligence",
	"restful":         "rest api",
	"rest apis":       "rest api",
	"es":              "elasticsearch",
	"tf":              "terraform",
	"problem-solving": "problem solving",
}

// softSkillCues are free-text phrases hinting at soft skills; the soft
// skills sub-score counts cues present in both documents.
var softSkillCues = []string{
	"leadership", "led a team", "team lead", "mentoring", "mentored",
	"communication", "collaboration", "cross-functional", "stakeholder",
	"problem solving", "analytical", "ownership", "self-starter",
	"adaptability", "time management", "attention to detail",
	"presentation", "negotiation",
}

// responsibilityVerbs mark a JD sentence as a duty statement.
var responsibilityVerbs = []string{
	"develop", "design", "implement", "create", "build", "maintain",
	"manage", "lead", "coordinate", "oversee", "supervise", "direct",
	"analyze", "optimize", "improve", "enhance", "troubleshoot",
	"collaborate", "work with", "partner with", "communicate",
	"ensure", "deliver", "execute", "perform", "conduct",
	"architect", "define", "integrate", "test", "deploy", "monitor",
}

// requirementIndicators are alternative cues for duty statements.
var requirementIndicators = []string{
	"required", "must have", "should have", "responsible for",
	"duties include", "key responsibilities", "main tasks", "you will",
	"ability to", "experience in", "demonstrated ability",
}

// boilerplateStoplist drops JD lines that look like legal or benefits
// boilerplate rather than duties.
var boilerplateStoplist = []string{
	"equal opportunity", "equal employment", "without regard to",
	"affirmative action", "background check", "drug test",
	"benefits include", "we offer", "health insurance", "dental",
	"401k", "401(k)", "paid time off", "vacation policy",
	"privacy policy", "terms and conditions", "about us", "about the company",
}

// stopwords filter noise tokens out of lexical similarity and keyword
// extraction. Trimmed-down english list.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"but": true, "if": true, "of": true, "at": true, "by": true,
	"for": true, "with": true, "about": true, "to": true, "from": true,
	"in": true, "on": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "being": true, "have": true,
	"has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "should": true, "can": true,
	"could": true, "may": true, "might": true, "this": true,
	"that": true, "these": true, "those": true, "as": true, "you": true,
	"your": true, "our": true, "their": true, "they": true, "we": true,
	"it": true, "its": true, "not": true, "no": true, "so": true,
	"than": true, "too": true, "very": true, "such": true, "other": true,
	"into": true, "over": true, "under": true, "more": true, "most": true,
	"all": true, "any": true, "each": true, "who": true, "what": true,
	"which": true, "when": true, "where": true, "how": true, "why": true,
}

// degreeKeywords map degree mentions to the ordinal scale. Checked in
// descending order so the strongest credential wins.
var degreeKeywords = []struct {
	Level    int
	Keywords []string
}{
	{4, []string{"phd", "ph.d", "doctorate", "doctoral"}},
	{3, []string{"master", "m.tech", "mtech", "m.sc", "msc", "m.e", "mba", "m.a"}},
	{2, []string{"bachelor", "b.tech", "btech", "b.sc", "bsc", "b.e", "b.a", "undergraduate degree"}},
	{1, []string{"diploma", "certificate"}},
}

package models

// EntryType categorizes a knowledge entry within its collection.
type EntryType string

const (
	EntryTypeConditionOverview EntryType = "condition_overview"
	EntryTypeHerb              EntryType = "herb"
	EntryTypeDiet              EntryType = "diet"
	EntryTypeYoga              EntryType = "yoga"
	EntryTypePrecautions       EntryType = "precautions"
	EntryTypeLifestyle         EntryType = "lifestyle"
)

// Knowledge collection names. These are the exact table names in the
// vector store; SearchByCondition and Upsert reject anything else.
const (
	CollectionConditions   = "conditions"
	CollectionHerbs        = "herbs"
	CollectionDiet         = "diet_guidelines"
	CollectionYoga         = "yoga_practices"
	CollectionPrecautions  = "precautions"
	CollectionLifestyle    = "lifestyle"
	CollectionProgressLogs = "progress_logs"
)

// KnowledgeCollections lists every collection the store owns, the six
// knowledge collections plus the progress log collection.
var KnowledgeCollections = []string{
	CollectionConditions,
	CollectionHerbs,
	CollectionDiet,
	CollectionYoga,
	CollectionPrecautions,
	CollectionLifestyle,
	CollectionProgressLogs,
}

// KnowledgeEntry is one seeded corpus item. ID is unique within a
// collection and hashes (together with the collection name) into the
// stored point id, so reseeding overwrites instead of duplicating.
type KnowledgeEntry struct {
	ID        string    `json:"id"`
	Condition string    `json:"condition"`
	Dosha     string    `json:"dosha"`
	Type      EntryType `json:"type"`
	Herb      string    `json:"herb,omitempty"`
	Text      string    `json:"text"`
}

// Passage is a retrieved copy of a knowledge entry's payload (every
// field except the id), request-scoped and discarded after use.
type Passage struct {
	Condition string    `json:"condition"`
	Dosha     string    `json:"dosha"`
	Type      EntryType `json:"type"`
	Herb      string    `json:"herb,omitempty"`
	Text      string    `json:"text"`
}

// Section keys of a RetrievalResult, one per prompt placeholder.
const (
	SectionOverview    = "overview"
	SectionHerbs       = "herbs"
	SectionDiet        = "diet"
	SectionYoga        = "yoga"
	SectionPrecautions = "precautions"
	SectionLifestyle   = "lifestyle"
)

// RetrievalResult maps a section key to passages ordered by descending
// similarity among entries matching the condition filter.
type RetrievalResult map[string][]Passage

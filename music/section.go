package music

// SectionType is the structural role of a span of measures.
type SectionType string

const (
	SectionIntro     SectionType = "intro"
	SectionBuildup   SectionType = "buildup"
	SectionDrop      SectionType = "drop"
	SectionBreakdown SectionType = "breakdown"
	SectionVerse     SectionType = "verse"
	SectionHook      SectionType = "hook"
	SectionOutro     SectionType = "outro"
)

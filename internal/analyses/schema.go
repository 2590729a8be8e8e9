package analyses

// StructuredContent is the normalized extraction of a job description or
// resume. Every field is a flat list of strings; the last three are
// populated for resumes only.
//
// JSON shape:
// {
//   "hardSkills": ["string"],
//   "softSkills": ["string"],
//   "tools": ["string"],
//   "certifications": ["string"],
//   "education": ["string"],
//   "jobTitles": ["string"],
//   "workExperience": ["string"],
//   "projects": ["string"],
//   "achievements": ["string"]
// }
type StructuredContent struct {
	HardSkills     []string `json:"hardSkills"`
	SoftSkills     []string `json:"softSkills"`
	Tools          []string `json:"tools"`
	Certifications []string `json:"certifications"`
	Education      []string `json:"education"`
	JobTitles      []string `json:"jobTitles"`

	WorkExperience []string `json:"workExperience,omitempty"`
	Projects       []string `json:"projects,omitempty"`
	Achievements   []string `json:"achievements,omitempty"`
}

// SkillBuckets splits skills into the two categories the comparator uses.
type SkillBuckets struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// ComparisonResult is the scored output of comparing a job description
// against a resume.
//
// JSON shape:
// {
//   "matchScore": number,
//   "matchedSkills": {"technical": ["string"], "soft": ["string"]},
//   "missingSkills": {"technical": ["string"], "soft": ["string"]},
//   "suggestions": ["string"],
//   "analysisSummary": "string"
// }
//
// matchScore is passed through as the model produced it and skill arrays
// are not deduplicated; there is no local enforcement beyond structure.
type ComparisonResult struct {
	MatchScore      float64      `json:"matchScore"`
	MatchedSkills   SkillBuckets `json:"matchedSkills"`
	MissingSkills   SkillBuckets `json:"missingSkills"`
	Suggestions     []string     `json:"suggestions"`
	AnalysisSummary string       `json:"analysisSummary"`
}

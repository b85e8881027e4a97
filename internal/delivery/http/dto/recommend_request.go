package dto

type RecommendRequest struct {
	Skill              string   `json:"skill"`
	Level              string   `json:"level"`
	CompletedCourseIDs []string `json:"completed_course_ids"`
}

type SkillGapRequest struct {
	Profile string `json:"profile"`
}

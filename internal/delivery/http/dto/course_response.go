package dto

import "path-pilot/internal/domain/course"

type HealthResponse struct {
	Status         string `json:"status"`
	CoursesLoaded  int    `json:"courses_loaded"`
	QuestionsReady int    `json:"questions_loaded"`
	CatalogVersion string `json:"catalog_version"`
	LoadedAt       string `json:"loaded_at"`
}

type CourseListResponse struct {
	Courses []course.Course `json:"courses"`
	Total   int             `json:"total"`
}

type CoursesBySkillResponse struct {
	Skill   string          `json:"skill"`
	Courses []course.Course `json:"courses"`
	Total   int             `json:"total"`
}

type DependenciesResponse struct {
	CourseID     string          `json:"course_id"`
	CourseTitle  string          `json:"course_title"`
	Dependencies []course.Course `json:"dependencies"`
	Total        int             `json:"total"`
}

type SkillListResponse struct {
	Skills []string `json:"skills"`
	Total  int      `json:"total"`
}

type ReloadResponse struct {
	CatalogVersion string `json:"catalog_version"`
	Courses        int    `json:"courses"`
	LoadedAt       string `json:"loaded_at"`
}

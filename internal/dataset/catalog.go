// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package dataset

// Categories is the fixed course-category enumeration. Learner
// learning_goals draw from the same set.
var Categories = []string{
	"Web Development", "Data Science", "Machine Learning", "Mobile Development",
	"DevOps", "Cybersecurity", "UI/UX Design", "Cloud Computing", "Blockchain",
	"Game Development", "Database Management", "Software Engineering",
}

// Skills is the fixed skill catalog used for skills_taught, prerequisites
// and learner current_skills.
var Skills = []string{
	"JavaScript", "Python", "React", "Node.js", "SQL", "Machine Learning",
	"Data Analysis", "AWS", "Docker", "Git", "HTML/CSS", "TypeScript",
	"MongoDB", "PostgreSQL", "TensorFlow", "Pandas", "NumPy", "Kubernetes",
	"Linux", "Java", "C++", "Swift", "Kotlin", "Vue.js", "Angular",
}

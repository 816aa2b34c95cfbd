package repository

import (
	"time"

	"wikiflow-server/internal/domain"
)

// Personas returns the fixed demo user set. Immutable configuration; the
// first entry is the default identity.
func Personas() []domain.User {
	return []domain.User{
		{
			ID:        "u1",
			Name:      "Dana Wang (Admin)",
			Email:     "admin@company.com",
			Role:      domain.RoleAdmin,
			AvatarURL: "https://ui-avatars.com/api/?name=Admin+User&background=6366f1&color=fff",
		},
		{
			ID:        "u2",
			Name:      "Mei Li (Editor)",
			Email:     "editor@company.com",
			Role:      domain.RoleEditor,
			AvatarURL: "https://ui-avatars.com/api/?name=Editor+User&background=10b981&color=fff",
		},
		{
			ID:        "u3",
			Name:      "Leo Chang (Viewer)",
			Email:     "viewer@company.com",
			Role:      domain.RoleViewer,
			AvatarURL: "https://ui-avatars.com/api/?name=Viewer+User&background=64748b&color=fff",
		},
	}
}

// SeedDocuments returns the collection written on first run when the
// documents key is absent.
func SeedDocuments() []*domain.Document {
	now := time.Now()
	return []*domain.Document{
		{
			ID:          "1",
			Title:       "Employee Onboarding Guide",
			Content:     "# Welcome Aboard\n\n## First Day Checklist\n1. Pick up your badge\n2. Set up your computer account\n3. Complete insurance paperwork\n\n## Everyday Tools\n- Slack: communication\n- Jira: project tracking\n\nPlease finish all setup steps within your first week.",
			Tags:        []string{"HR", "Onboarding", "SOP"},
			Category:    "Human Resources",
			CreatedBy:   "Admin User",
			CreatedAt:   now.Add(-10 * 24 * time.Hour),
			UpdatedAt:   now.Add(-2 * 24 * time.Hour),
			AccessLevel: domain.RoleViewer,
			History:     []domain.DocVersion{},
		},
		{
			ID:          "2",
			Title:       "2025 Product Roadmap",
			Content:     "# 2025 Product Plan\n\n## Q1 Focus\n- Finish AI module integration\n- Polish the mobile experience\n\n## Q2 Focus\n- Expand payment support for overseas markets\n- Add multi-language support",
			Tags:        []string{"Product", "Strategy", "2025"},
			Category:    "Product",
			CreatedBy:   "Alice Product",
			CreatedAt:   now.Add(-5 * 24 * time.Hour),
			UpdatedAt:   now,
			AccessLevel: domain.RoleEditor,
			History:     []domain.DocVersion{},
		},
	}
}

// SeedProjects returns the collection written on first run when the
// projects key is absent.
func SeedProjects() []*domain.Project {
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	inThreeDays := now.Add(3 * 24 * time.Hour)
	return []*domain.Project{
		{
			ID:          "p1",
			Name:        "Q1 Website Relaunch",
			Description: "Performance and visual overhaul of the company site, targeting a 20% conversion lift.",
			Status:      domain.ProjectActive,
			Members:     []string{"u1", "u2"},
			CreatedBy:   "Dana Wang (Admin)",
			CreatedAt:   now,
			UpdatedAt:   now,
			Tasks: []domain.Task{
				{
					ID:         "t1",
					Title:      "Design homepage mockup",
					Status:     domain.TaskDone,
					Priority:   domain.PriorityHigh,
					AssigneeID: "u2",
					DueDate:    &yesterday,
					CreatedAt:  now,
				},
				{
					ID:         "t2",
					Title:      "Build frontend layout",
					Status:     domain.TaskInProgress,
					Priority:   domain.PriorityHigh,
					AssigneeID: "u3",
					DueDate:    &inThreeDays,
					CreatedAt:  now,
				},
				{
					ID:         "t3",
					Title:      "Write landing page copy",
					Status:     domain.TaskTodo,
					Priority:   domain.PriorityMedium,
					AssigneeID: "u1",
					CreatedAt:  now,
				},
			},
		},
		{
			ID:          "p2",
			Name:        "Internal Security Audit",
			Description: "Semi-annual security review and access permission inventory.",
			Status:      domain.ProjectActive,
			Members:     []string{"u1"},
			CreatedBy:   "Dana Wang (Admin)",
			CreatedAt:   now,
			UpdatedAt:   now,
			Tasks: []domain.Task{
				{
					ID:         "t4",
					Title:      "Export log reports",
					Status:     domain.TaskTodo,
					Priority:   domain.PriorityLow,
					AssigneeID: "u1",
					CreatedAt:  now,
				},
			},
		},
	}
}

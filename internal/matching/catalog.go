package matching

import "github.com/skillscope/skillscope/internal/profile"

// Importance classifies how essential a requirement is for its role.
type Importance string

const (
	ImportanceRequired   Importance = "required"
	ImportancePreferred  Importance = "preferred"
	ImportanceNiceToHave Importance = "nice-to-have"
)

// Requirement is one entry of a role's requirement list. The catalog is
// compiled-in reference data; the structs are never mutated after init.
type Requirement struct {
	ID         string     `json:"id"`
	Skill      string     `json:"skill"`
	Category   string     `json:"category"`
	Importance Importance `json:"importance"`
}

// Supported role identifiers.
const (
	RoleFrontend  = "Frontend Developer"
	RoleBackend   = "Backend Developer"
	RoleFullStack = "Full Stack Developer"
)

// DefaultRole is returned for lookups of unrecognized role identifiers.
const DefaultRole = RoleFrontend

var catalog = map[string][]Requirement{
	RoleFrontend: {
		{ID: "1", Skill: "JavaScript", Category: profile.CategoryProgrammingLanguage, Importance: ImportanceRequired},
		{ID: "2", Skill: "React", Category: profile.CategoryFramework, Importance: ImportanceRequired},
		{ID: "3", Skill: "HTML", Category: profile.CategoryTechnology, Importance: ImportanceRequired},
		{ID: "4", Skill: "CSS", Category: profile.CategoryTechnology, Importance: ImportanceRequired},
		{ID: "5", Skill: "TypeScript", Category: profile.CategoryProgrammingLanguage, Importance: ImportancePreferred},
		{ID: "6", Skill: "Vue.js", Category: profile.CategoryFramework, Importance: ImportancePreferred},
		{ID: "7", Skill: "Angular", Category: profile.CategoryFramework, Importance: ImportanceNiceToHave},
		{ID: "8", Skill: "SASS", Category: profile.CategoryTechnology, Importance: ImportanceNiceToHave},
		{ID: "9", Skill: "Git", Category: profile.CategoryTool, Importance: ImportanceRequired},
		{ID: "10", Skill: "REST API", Category: profile.CategoryTechnology, Importance: ImportancePreferred},
	},
	RoleBackend: {
		{ID: "1", Skill: "Python", Category: profile.CategoryProgrammingLanguage, Importance: ImportanceRequired},
		{ID: "2", Skill: "Node.js", Category: profile.CategoryFramework, Importance: ImportanceRequired},
		{ID: "3", Skill: "Java", Category: profile.CategoryProgrammingLanguage, Importance: ImportancePreferred},
		{ID: "4", Skill: "PostgreSQL", Category: profile.CategoryTechnology, Importance: ImportanceRequired},
		{ID: "5", Skill: "MongoDB", Category: profile.CategoryTechnology, Importance: ImportancePreferred},
		{ID: "6", Skill: "Docker", Category: profile.CategoryTool, Importance: ImportancePreferred},
		{ID: "7", Skill: "AWS", Category: profile.CategoryPlatform, Importance: ImportanceNiceToHave},
		{ID: "8", Skill: "GraphQL", Category: profile.CategoryTechnology, Importance: ImportanceNiceToHave},
		{ID: "9", Skill: "Git", Category: profile.CategoryTool, Importance: ImportanceRequired},
		{ID: "10", Skill: "REST API", Category: profile.CategoryTechnology, Importance: ImportanceRequired},
	},
	RoleFullStack: {
		{ID: "1", Skill: "JavaScript", Category: profile.CategoryProgrammingLanguage, Importance: ImportanceRequired},
		{ID: "2", Skill: "React", Category: profile.CategoryFramework, Importance: ImportanceRequired},
		{ID: "3", Skill: "Node.js", Category: profile.CategoryFramework, Importance: ImportanceRequired},
		{ID: "4", Skill: "Python", Category: profile.CategoryProgrammingLanguage, Importance: ImportancePreferred},
		{ID: "5", Skill: "PostgreSQL", Category: profile.CategoryTechnology, Importance: ImportanceRequired},
		{ID: "6", Skill: "TypeScript", Category: profile.CategoryProgrammingLanguage, Importance: ImportancePreferred},
		{ID: "7", Skill: "Docker", Category: profile.CategoryTool, Importance: ImportancePreferred},
		{ID: "8", Skill: "AWS", Category: profile.CategoryPlatform, Importance: ImportanceNiceToHave},
		{ID: "9", Skill: "Git", Category: profile.CategoryTool, Importance: ImportanceRequired},
		{ID: "10", Skill: "REST API", Category: profile.CategoryTechnology, Importance: ImportanceRequired},
	},
}

// Roles returns the supported role identifiers in display order.
func Roles() []string {
	return []string{RoleFrontend, RoleBackend, RoleFullStack}
}

// KnownRole reports whether role has its own catalog entry.
func KnownRole(role string) bool {
	_, ok := catalog[role]
	return ok
}

// RequirementsFor returns the ordered requirement list of the given role.
// Unrecognized roles fall back to DefaultRole's list rather than an empty
// one. The returned slice is a copy and safe for the caller to hold.
func RequirementsFor(role string) []Requirement {
	reqs, ok := catalog[role]
	if !ok {
		reqs = catalog[DefaultRole]
	}

	out := make([]Requirement, len(reqs))
	copy(out, reqs)
	return out
}

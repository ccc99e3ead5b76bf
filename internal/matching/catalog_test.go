package matching

import "testing"

func TestRequirementsForKnownRoles(t *testing.T) {
	for _, role := range Roles() {
		reqs := RequirementsFor(role)
		if len(reqs) != 10 {
			t.Fatalf("expected 10 requirements for %s, got %d", role, len(reqs))
		}

		if !KnownRole(role) {
			t.Fatalf("expected %s to be a known role", role)
		}
	}
}

func TestRequirementsForUnknownRoleFallsBack(t *testing.T) {
	fallback := RequirementsFor("DevOps Engineer")
	expected := RequirementsFor(DefaultRole)

	if KnownRole("DevOps Engineer") {
		t.Fatalf("did not expect DevOps Engineer to be a known role")
	}

	if len(fallback) != len(expected) {
		t.Fatalf("expected fallback to default catalog, got %d requirements", len(fallback))
	}

	for i := range expected {
		if fallback[i] != expected[i] {
			t.Fatalf("requirement %d differs from the default catalog: %+v", i, fallback[i])
		}
	}
}

func TestRequirementsForReturnsCopy(t *testing.T) {
	first := RequirementsFor(RoleBackend)
	first[0].Skill = "mutated"

	second := RequirementsFor(RoleBackend)
	if second[0].Skill == "mutated" {
		t.Fatalf("mutating a returned slice leaked into the catalog")
	}
}

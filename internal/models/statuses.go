package models

type UserRole string

// Single role vocabulary for the whole system. Legacy data used two
// schemes (researcher/admin and admin/user/guest/root); "user" maps to
// researcher, "guest" is an unauthenticated visitor and never stored.
const (
	UserRoleResearcher UserRole = "researcher"
	UserRoleAdmin      UserRole = "admin"
	UserRoleRoot       UserRole = "root"
)

// RoleLevels orders the roles; a higher level includes no implicit grant,
// gates always name their allowed roles explicitly.
var RoleLevels = map[UserRole]int{
	UserRoleResearcher: 1,
	UserRoleAdmin:      2,
	UserRoleRoot:       3,
}

// Materias is the closed subject set for investigations.
var Materias = []string{"español", "sociales", "ciencias", "matematicas"}

// IsValidMateria reports whether m is one of the declared subjects.
func IsValidMateria(m string) bool {
	for _, v := range Materias {
		if v == m {
			return true
		}
	}
	return false
}

// SchoolGrades is the closed set of grade labels for user profiles.
var SchoolGrades = []string{
	"7° Año", "8° Año", "9° Año", "10° Año", "11° Año", "12° Año",
	"Universidad 1° Año", "Universidad 2° Año", "Universidad 3° Año",
	"Universidad 4° Año", "Universidad 5° Año", "Posgrado",
}

// IsValidSchoolGrade reports whether g is one of the declared grade labels.
func IsValidSchoolGrade(g string) bool {
	for _, v := range SchoolGrades {
		if v == g {
			return true
		}
	}
	return false
}

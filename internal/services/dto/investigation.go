package dto

// UploadWorkRequest is the multipart metadata accompanying a PDF upload.
// The file itself arrives as the "archivoPDF" form file.
type UploadWorkRequest struct {
	Titulo      string `form:"titulo" json:"titulo" validate:"required,max=200"`
	Descripcion string `form:"descripcion" json:"descripcion" validate:"omitempty,max=2000"`
	Materia     string `form:"materia" json:"materia" validate:"required,is-materia"`
	Autor       string `form:"autor" json:"autor" validate:"required,max=100"`
	AutorGrado  string `form:"autor_grado" json:"autor_grado" validate:"omitempty,max=50"`
}

// InvestigationQuery is the investigation search surface. Raw strings;
// the repository filter compiles them.
type InvestigationQuery struct {
	// Materia accepts a comma-separated list. Area is the legacy alias;
	// Materia wins when both are present.
	Materia string `form:"materia"`
	Area    string `form:"area"`
	Grado   string `form:"grado"`
	// Exact keeps its asymmetric default: anything but the literal
	// "false" means exact.
	Exact string `form:"exact"`
}

// MateriaParam resolves the materia/area alias.
func (q *InvestigationQuery) MateriaParam() string {
	if q.Materia != "" {
		return q.Materia
	}
	return q.Area
}

package models

// Investigation is a published research work. The original stored trabajos
// and investigaciones in a single collection; this model is that single
// record: metadata plus the generated name of the attached PDF.
type Investigation struct {
	BaseModel
	Titulo      string `gorm:"not null" json:"titulo"`
	Descripcion string `json:"descripcion"`
	Materia     string `gorm:"index;not null" json:"materia"`
	AutorNombre string `gorm:"not null" json:"autor_nombre"`
	AutorGrado  string `gorm:"index" json:"autor_grado"`
	// ArchivoPDF holds the storage-generated file name, never the
	// client-supplied one.
	ArchivoPDF string `json:"archivo_pdf"`
}

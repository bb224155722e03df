package medcard

import "time"

// Language is the persisted two-valued UI language preference.
type Language string

const (
	LangES Language = "es"
	LangEN Language = "en"
)

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == LangEN {
		return LangES
	}
	return LangEN
}

// Labels holds every caption the card renders in one language.
type Labels struct {
	HeaderCountry string
	HeaderMission string
	HeaderTitle   string

	PatientName      string
	ClinicalHistory  string
	RehabRoom        string
	State            string
	BirthDate        string
	Age              string
	Sex              string
	IDCard           string
	HealthConditions string

	Therapies         string
	TreatmentSessions string
	AddRow            string
	AddSession        string
	Save              string
	Print             string
	DatePlaceholder   string

	Saved      string
	SaveFailed string

	SearchYear  string
	SearchMonth string
	SearchDay   string
}

var labelsES = Labels{
	HeaderCountry: "REPÚBLICA BOLIVARIANA DE VENEZUELA",
	HeaderMission: "MISIÓN MÉDICA CUBANA",
	HeaderTitle:   "TARJETA DE TRATAMIENTO EN REHABILITACIÓN",

	PatientName:      "Nombre y Apellidos",
	ClinicalHistory:  "Número de Historia Clínica",
	RehabRoom:        "Sala de Rehabilitación",
	State:            "Estado",
	BirthDate:        "Fecha Nacimiento",
	Age:              "Edad",
	Sex:              "Sexo",
	IDCard:           "Cédula de Identidad",
	HealthConditions: "Condiciones de Salud",

	Therapies:         "Terapias",
	TreatmentSessions: "SESIONES DE TRATAMIENTO",
	AddRow:            "Agregar fila",
	AddSession:        "Agregar sesión",
	Save:              "Guardar",
	Print:             "Imprimir",
	DatePlaceholder:   "Fecha",

	Saved:      "Guardado",
	SaveFailed: "No se pudo guardar",

	SearchYear:  "Buscar año...",
	SearchMonth: "Buscar mes...",
	SearchDay:   "Buscar día...",
}

var labelsEN = Labels{
	HeaderCountry: "BOLIVARIAN REPUBLIC OF VENEZUELA",
	HeaderMission: "CUBAN MEDICAL MISSION",
	HeaderTitle:   "REHABILITATION TREATMENT CARD",

	PatientName:      "Full Name",
	ClinicalHistory:  "Clinical History Number",
	RehabRoom:        "Rehabilitation Room",
	State:            "State",
	BirthDate:        "Birth Date",
	Age:              "Age",
	Sex:              "Sex",
	IDCard:           "Identity Card",
	HealthConditions: "Health Conditions",

	Therapies:         "Therapies",
	TreatmentSessions: "TREATMENT SESSIONS",
	AddRow:            "Add row",
	AddSession:        "Add session",
	Save:              "Save",
	Print:             "Print",
	DatePlaceholder:   "Date",

	Saved:      "Saved",
	SaveFailed: "Save failed",

	SearchYear:  "Search year...",
	SearchMonth: "Search month...",
	SearchDay:   "Search day...",
}

var monthsES = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var monthsEN = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// LabelsFor returns the caption set for lang, defaulting to Spanish.
func LabelsFor(lang Language) Labels {
	if lang == LangEN {
		return labelsEN
	}
	return labelsES
}

// MonthName returns the localized name of m.
func MonthName(lang Language, m time.Month) string {
	if lang == LangEN {
		return monthsEN[m-1]
	}
	return monthsES[m-1]
}

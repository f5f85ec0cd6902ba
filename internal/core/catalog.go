package core

// The category catalog is a fixed mapping from internal category code to
// localized display label. It is immutable and loaded once per process;
// transactions are validated against it at creation time.

// CategoryEntry pairs an internal category code with its display label.
type CategoryEntry struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

var categoryCatalog = []CategoryEntry{
	{Code: "Groceries", Label: "Alimentos"},
	{Code: "Rent/Mortgage", Label: "Alquiler/Hipoteca"},
	{Code: "Utilities", Label: "Servicios Públicos"},
	{Code: "Transportation", Label: "Transporte"},
	{Code: "Healthcare", Label: "Salud"},
	{Code: "Dining Out", Label: "Restaurantes"},
	{Code: "Entertainment", Label: "Entretenimiento"},
	{Code: "Hobbies", Label: "Pasatiempos"},
	{Code: "Shopping (Non-essential)", Label: "Compras (No esenciales)"},
	{Code: "Vacation/Travel", Label: "Vacaciones/Viajes"},
	{Code: "Education", Label: "Educación"},
	{Code: "Books", Label: "Libros"},
	{Code: "Museums/Culture", Label: "Museos/Cultura"},
	{Code: "Emergency Fund", Label: "Fondo de Emergencia"},
	{Code: "Repairs", Label: "Reparaciones"},
	{Code: "Gifts", Label: "Regalos"},
	{Code: "Salary", Label: "Salario"},
	{Code: "Freelance", Label: "Trabajo Freelance"},
	{Code: "Investment", Label: "Inversión"},
	{Code: "Bonus", Label: "Bonificación"},
	{Code: "Miscellaneous", Label: "Misceláneos"},
}

var categoryLabels = func() map[string]string {
	m := make(map[string]string, len(categoryCatalog))
	for _, e := range categoryCatalog {
		m[e.Code] = e.Label
	}
	return m
}()

// Categories returns a copy of the catalog in its fixed order.
func Categories() []CategoryEntry {
	out := make([]CategoryEntry, len(categoryCatalog))
	copy(out, categoryCatalog)
	return out
}

// KnownCategory reports whether code belongs to the catalog.
func KnownCategory(code string) bool {
	_, ok := categoryLabels[code]
	return ok
}

// CategoryLabel maps a category code to its display label. Unknown codes
// fall back to the code itself so a stale record still renders.
func CategoryLabel(code string) string {
	if label, ok := categoryLabels[code]; ok {
		return label
	}
	return code
}

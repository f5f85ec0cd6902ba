package core

// ReflectionPrompt is one of the classic Kakebo self-review questions shown
// on the reflection page. The set is static.
type ReflectionPrompt struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Details  string `json:"details"`
}

var reflectionPrompts = []ReflectionPrompt{
	{
		ID:       "q1",
		Question: "¿Cuánto dinero tienes?",
		Details:  "Considera todas las fuentes: cuentas bancarias, efectivo, inversiones (aproxima si es necesario).",
	},
	{
		ID:       "q2",
		Question: "¿Cuánto dinero te gustaría ahorrar?",
		Details:  "Piensa en tus metas financieras a corto y largo plazo.",
	},
	{
		ID:       "q3",
		Question: "¿Cuánto dinero estás gastando realmente?",
		Details:  "Revisa tu historial de transacciones del último mes. ¿Hay alguna sorpresa?",
	},
	{
		ID:       "q4",
		Question: "¿Cómo puedes mejorar?",
		Details:  "Identifica 1-3 áreas donde puedes reducir gastos o aumentar ingresos. ¿Qué pequeños cambios puedes hacer?",
	},
	{
		ID:       "q5",
		Question: "¿Cuáles fueron tus mayores logros financieros este mes?",
		Details:  "Reconoce el progreso, como ceñirte a un presupuesto, ahorrar más de lo planeado o evitar una compra impulsiva.",
	},
	{
		ID:       "q6",
		Question: "¿Qué desafíos financieros enfrentaste y cómo los manejaste?",
		Details:  "Reflexiona sobre gastos inesperados o tentaciones y cómo los navegaste.",
	},
}

// ReflectionPrompts returns a copy of the static prompt set.
func ReflectionPrompts() []ReflectionPrompt {
	out := make([]ReflectionPrompt, len(reflectionPrompts))
	copy(out, reflectionPrompts)
	return out
}

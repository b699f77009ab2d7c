package model

// Option is one dropdown entry: what the user reads and what gets stored.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var GenderOptions = []Option{
	{Label: "Masculino", Value: "masculino"},
	{Label: "Feminino", Value: "feminino"},
}

// LevelOptions lists the activity levels. Only the sedentary entry has a
// short value; the others store the full description.
var LevelOptions = []Option{
	{
		Label: "Sedentário (pouco ou nenhuma atividade física)",
		Value: "Sedentário",
	},
	{
		Label: "Levemente ativo (exercícios de 1 a 3 vezes na semana)",
		Value: "Levemente ativo (exercícios de 1 a 3 vezes na semana)",
	},
	{
		Label: "Moderadamente ativo (exercícios 3 a 5 vezes na semana)",
		Value: "Moderadamente ativo (exercícios 3 a 5 vezes na semana)",
	},
	{
		Label: "Altamente ativo (exercícios de 5 a 7 vezes na semana)",
		Value: "Altamente ativo (exercícios de 5 a 7 vezes na semana)",
	},
}

var ObjectiveOptions = []Option{
	{Label: "Emagrecer", Value: "Emagrecer"},
	{Label: "Hipertrofia", Value: "Hipertrofia"},
	{Label: "Hipertrofia + Definição", Value: "Hipertrofia + Definição"},
	{Label: "Definição", Value: "Definição"},
}

// LabelFor returns the label of value in opts, or value itself when unknown.
func LabelFor(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

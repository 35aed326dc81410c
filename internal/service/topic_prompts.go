package service

import (
	"fmt"
	"strings"

	"chelas-api/internal/domain"
)

const topicSystemPrompt = "Eres un generador amigable de temas de conversación para una app de networking en un evento de JavaScript."

func buildTopicPrompt(interestsA, interestsB, avoidTopics []string, matchPercentage int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Intereses de Usuario A: %s.\n", joinOrNone(interestsA))
	fmt.Fprintf(&b, "Intereses de Usuario B: %s.\n", joinOrNone(interestsB))
	fmt.Fprintf(&b, "Temas a evitar: %s.\n", joinOrNone(avoidTopics))
	fmt.Fprintf(&b, "Porcentaje de coincidencia: %d%%.\n\n", matchPercentage)
	b.WriteString("Genera una pregunta interesante para iniciar una conversación que considere los intereses compartidos de los usuarios.\n")
	b.WriteString("La pregunta debe ser específica, abierta y fomentar una conversación profunda.\n")
	fmt.Fprintf(&b, "Prioriza temas donde hay coincidencias (%d%% de coincidencia).\n", matchPercentage)
	b.WriteString("La respuesta debe ser una sola pregunta en español, concisa y atractiva.")
	return b.String()
}

func buildTopicsWithOptionsPrompt(interestsA, interestsB, avoidTopics []string, matchPercentage int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Intereses de Usuario A: %s.\n", joinOrNone(interestsA))
	fmt.Fprintf(&b, "Intereses de Usuario B: %s.\n", joinOrNone(interestsB))
	fmt.Fprintf(&b, "Temas a evitar: %s.\n", joinOrNone(avoidTopics))
	fmt.Fprintf(&b, "Porcentaje de coincidencia: %d%%.\n\n", matchPercentage)
	b.WriteString("Genera 3 preguntas para iniciar una conversación entre los dos usuarios, cada una con 3 opciones de respuesta sugeridas.\n")
	b.WriteString("Las preguntas deben ser específicas, abiertas y basadas en los intereses compartidos. Todo en español.\n")
	b.WriteString("Devuelve SOLO un arreglo JSON con este formato:\n")
	b.WriteString(`[{"question": "...", "options": [{"emoji": "🚀", "text": "..."}, {"emoji": "🎯", "text": "..."}, {"emoji": "💡", "text": "..."}]}]`)
	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "Ninguno"
	}
	return strings.Join(items, ", ")
}

// fallbackTopics se usa cuando la API de chat no responde: preguntas
// enlatadas con el mismo tono que las generadas.
var fallbackTopics = []string{
	"¿Cómo crees que la inteligencia artificial cambiará nuestra forma de programar en los próximos 5 años?",
	"Si pudieras recomendar una película o serie que haya cambiado tu perspectiva, ¿cuál sería y por qué?",
	"¿Qué estrategias has encontrado más efectivas para mantenerte actualizado con las nuevas tecnologías?",
	"¿Qué género musical te inspira más cuando estás programando o siendo creativo?",
	"¿Cuál ha sido tu experiencia de viaje más memorable y qué la hizo especial?",
	"¿Tienes algún hobby o pasatiempo que te ayude a equilibrar tu vida profesional con la personal?",
	"¿Cuál es tu opinión sobre el balance entre el código abierto y el software propietario?",
	"Si pudieras elegir cualquier tecnología para dominar en los próximos meses, ¿cuál sería y por qué?",
	"¿Qué libro o recurso recomendarías a alguien que quiera aprender sobre tu área de experiencia?",
	"¿Qué tendencias tecnológicas te parecen más prometedoras actualmente?",
	"¿Cómo abordas el síndrome del impostor en tu vida profesional?",
	"¿Qué tipo de proyectos personales estás desarrollando o te gustaría desarrollar?",
	"¿Cuál es tu enfoque para mantener un buen equilibrio entre trabajo y vida personal?",
	"¿Qué comunidades o recursos online has encontrado más valiosos para tu desarrollo profesional?",
	"¿Qué consejo le darías a alguien que está comenzando en el mundo de la programación?",
}

var fallbackTopicsWithOptions = []domain.TopicWithOptions{
	{
		Question: "¿Qué tecnología te gustaría dominar en los próximos meses?",
		Options: []domain.TopicOption{
			{Emoji: "🤖", Text: "Algo de inteligencia artificial"},
			{Emoji: "🌐", Text: "Un framework web nuevo"},
			{Emoji: "📱", Text: "Desarrollo móvil"},
		},
	},
	{
		Question: "¿Cómo prefieres aprender algo nuevo?",
		Options: []domain.TopicOption{
			{Emoji: "📚", Text: "Leyendo documentación y libros"},
			{Emoji: "🛠️", Text: "Construyendo un proyecto"},
			{Emoji: "🎥", Text: "Viendo cursos y charlas"},
		},
	},
	{
		Question: "¿Qué haces para desconectar después de programar?",
		Options: []domain.TopicOption{
			{Emoji: "🎮", Text: "Videojuegos"},
			{Emoji: "🏃", Text: "Deporte o salir a caminar"},
			{Emoji: "🎵", Text: "Música o algún hobby creativo"},
		},
	},
}

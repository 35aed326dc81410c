package domain

import (
	"encoding/json"
	"time"
)

// BotID es el perfil sintetico con el que se conversa cuando no hay nadie
// disponible en el lobby. Las operaciones de persistencia de match lo omiten.
const BotID = "00000000-0000-0000-0000-000000000000"

// Profile representa una fila de la tabla profiles. La columna super_profile
// guarda el arbol de preferencias completo como un unico documento JSONB.
type Profile struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Avatar           string          `json:"avatar"`
	DescriptionNote  string          `json:"descripcion_personal,omitempty"`
	ExternalAnalysis string          `json:"analisis_externo,omitempty"`
	IsAvailable      bool            `json:"is_available"`
	PreferredTopics  []string        `json:"temas_preferidos"`
	SuperProfileRaw  json.RawMessage `json:"super_profile,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Interest es una entrada del catalogo global de intereses. El id coincide
// con la clave de hoja del SuperProfile para los intereses predefinidos;
// los personalizados llevan el prefijo "custom-" y no tienen hoja.
type Interest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// UserInterest es una fila de la tabla puente user_interests.
type UserInterest struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	InterestID string    `json:"interest_id"`
	IsAvoided  bool      `json:"is_avoided"`
	CreatedAt  time.Time `json:"created_at"`
}

// Categorias validas del enum topic_category.
const (
	CategoryMovies  = "movies"
	CategoryMusic   = "music"
	CategoryBooks   = "books"
	CategoryFood    = "food"
	CategoryTravel  = "travel"
	CategorySports  = "sports"
	CategoryHobbies = "hobbies"
	CategoryArt     = "art"
	CategoryTech    = "tech"
	CategoryTrends  = "trends"
	CategoryHumor   = "humor"
	CategoryOther   = "other"
	CategoryAvoid   = "avoid"
)

// Conversation representa un encuentro cronometrado entre dos asistentes.
type Conversation struct {
	ID              string     `json:"id"`
	UserA           string     `json:"user_a"`
	UserB           string     `json:"user_b"`
	IsFavorite      bool       `json:"is_favorite"`
	FollowUp        bool       `json:"follow_up"`
	MatchPercentage *int       `json:"match_percentage,omitempty"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
}

// ConversationTopic es un tema generado por el LLM y asociado a una conversacion.
type ConversationTopic struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Topic          string    `json:"topic"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationNote guarda el apunte libre de un usuario sobre una conversacion.
type ConversationNote struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	UserID         string    `json:"user_id"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}

// DrinkExpense es un gasto registrado durante el evento.
type DrinkExpense struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// MatchResult es el resultado derivado del calculo de compatibilidad.
// No se persiste como entidad propia: solo match_percentage viaja a la
// conversacion mas reciente entre los dos usuarios.
type MatchResult struct {
	Percentage int `json:"percentage"`
	MatchCount int `json:"match_count"`
}

// TopicOption es una opcion de respuesta sugerida para un tema con opciones.
type TopicOption struct {
	Emoji string `json:"emoji"`
	Text  string `json:"text"`
}

// TopicWithOptions es la variante enriquecida de tema de conversacion.
type TopicWithOptions struct {
	Question string        `json:"question"`
	Options  []TopicOption `json:"options"`
}

package superprofile

import "chelas-api/internal/domain"

// catalogEntry asocia una hoja con su etiqueta visible y su topic_category.
type catalogEntry struct {
	id       string
	name     string
	category string
}

// catalogEntries es el contenido del catalogo global de intereses, una fila
// por hoja seleccionable. La hoja isEnabled de opciones-avanzadas-ia es un
// flag de configuracion, no un interes, y queda fuera del catalogo.
var catalogEntries = []catalogEntry{
	{"terror", "Terror", domain.CategoryMovies},
	{"accion", "Acción", domain.CategoryMovies},
	{"comedia", "Comedia", domain.CategoryMovies},
	{"drama", "Drama", domain.CategoryMovies},
	{"romance", "Romance", domain.CategoryMovies},
	{"documentales", "Documentales", domain.CategoryMovies},
	{"animacion", "Animación", domain.CategoryMovies},
	{"fantastico", "Fantástico", domain.CategoryMovies},
	{"ciencia-ficcion", "Ciencia ficción", domain.CategoryMovies},

	{"rock", "Rock", domain.CategoryMusic},
	{"pop", "Pop", domain.CategoryMusic},
	{"rap", "Hip Hop / Rap", domain.CategoryMusic},
	{"electronica", "Electrónica", domain.CategoryMusic},
	{"jazz", "Jazz", domain.CategoryMusic},
	{"reggaeton", "Reggaetón", domain.CategoryMusic},
	{"salsa", "Salsa", domain.CategoryMusic},
	{"clasica", "Clásica", domain.CategoryMusic},

	{"novelas", "Novelas", domain.CategoryBooks},
	{"terror-books", "Terror", domain.CategoryBooks},
	{"scifi-books", "Ciencia ficción literaria", domain.CategoryBooks},
	{"poesia", "Poesía", domain.CategoryBooks},
	{"historia", "Historia", domain.CategoryBooks},
	{"biografias", "Biografías", domain.CategoryBooks},
	{"ensayos", "Ensayos", domain.CategoryBooks},
	{"comics-manga", "Cómics y manga", domain.CategoryBooks},

	{"cocina-internacional", "Cocina internacional", domain.CategoryFood},
	{"reposteria", "Repostería", domain.CategoryFood},
	{"comida-saludable", "Comida saludable", domain.CategoryFood},
	{"comida-vegana", "Comida vegana", domain.CategoryFood},
	{"comida-exotica", "Comida exótica", domain.CategoryFood},
	{"street-food", "Street food", domain.CategoryFood},

	{"playa", "Destinos de playa", domain.CategoryTravel},
	{"montana", "Destinos de montaña", domain.CategoryTravel},
	{"ciudades-historicas", "Ciudades históricas", domain.CategoryTravel},
	{"ecoturismo", "Ecoturismo", domain.CategoryTravel},
	{"turismo-cultural", "Turismo cultural", domain.CategoryTravel},
	{"cruceros", "Cruceros", domain.CategoryTravel},

	{"futbol", "Fútbol", domain.CategorySports},
	{"baloncesto", "Baloncesto", domain.CategorySports},
	{"tenis", "Tenis", domain.CategorySports},
	{"running", "Correr", domain.CategorySports},
	{"natacion", "Natación", domain.CategorySports},
	{"ciclismo", "Ciclismo", domain.CategorySports},
	{"artes-marciales", "Artes marciales", domain.CategorySports},

	{"gaming", "Gaming", domain.CategoryHobbies},
	{"diy", "DIY (Hazlo tú mismo)", domain.CategoryHobbies},
	{"jardineria", "Jardinería", domain.CategoryHobbies},
	{"coleccionismo", "Coleccionismo", domain.CategoryHobbies},
	{"manualidades", "Manualidades", domain.CategoryHobbies},
	{"modelismo", "Modelismo", domain.CategoryHobbies},
	{"podcasting", "Podcasting", domain.CategoryHobbies},

	{"pintura", "Pintura", domain.CategoryArt},
	{"fotografia", "Fotografía", domain.CategoryArt},
	{"teatro", "Teatro", domain.CategoryArt},
	{"escultura", "Escultura", domain.CategoryArt},
	{"cine-arte", "Cine de arte", domain.CategoryArt},

	{"programacion", "Programación", domain.CategoryTech},
	{"gadgets", "Gadgets", domain.CategoryTech},
	{"blockchain", "Blockchain", domain.CategoryTech},
	{"realidad-virtual", "Realidad virtual", domain.CategoryTech},

	{"noticias", "Noticias", domain.CategoryTrends},
	{"startups", "Startups", domain.CategoryTrends},
	{"redes-sociales", "Redes sociales", domain.CategoryTrends},
	{"economia", "Economía", domain.CategoryTrends},
	{"politica-global", "Política global", domain.CategoryTrends},

	{"memes", "Memes", domain.CategoryHumor},
	{"chistes", "Chistes", domain.CategoryHumor},
	{"standup", "Stand-up", domain.CategoryHumor},
	{"satira", "Sátira", domain.CategoryHumor},

	{"filosofia", "Filosofía", domain.CategoryOther},
	{"psicologia", "Psicología", domain.CategoryOther},
	{"politica", "Política", domain.CategoryOther},
	{"emprendimiento", "Emprendimiento", domain.CategoryOther},
	{"desarrollo-personal", "Desarrollo personal", domain.CategoryOther},
	{"autoayuda", "Autoayuda", domain.CategoryOther},

	{"spoilers", "Spoilers", domain.CategoryAvoid},
	{"temas-sensibles", "Temas sensibles", domain.CategoryAvoid},
	{"religion-controversia", "Religión y controversia", domain.CategoryAvoid},
	{"politica-extrema", "Política extrema", domain.CategoryAvoid},

	{"react", "React", domain.CategoryTech},
	{"nodejs", "Node.js", domain.CategoryTech},
	{"express", "Express", domain.CategoryTech},
	{"typescript", "TypeScript", domain.CategoryTech},
	{"angular", "Angular", domain.CategoryTech},
	{"vue", "Vue", domain.CategoryTech},
	{"svelte", "Svelte", domain.CategoryTech},
}

// Catalog devuelve las filas con las que se siembra la tabla interests.
func Catalog() []domain.Interest {
	out := make([]domain.Interest, 0, len(catalogEntries))
	for _, e := range catalogEntries {
		out = append(out, domain.Interest{ID: e.id, Name: e.name, Category: e.category})
	}
	return out
}

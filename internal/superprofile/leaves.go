package superprofile

// leaf es una entrada de la tabla de hojas booleanas: identificador de
// interes, puntero al campo correspondiente y si pertenece a la categoria
// avoid. La hoja de texto 'ia' no aparece aqui a proposito: el recorrido
// generico del arbol solo toca booleanos.
type leaf struct {
	id      string
	value   *bool
	avoided bool
}

// booleanLeaves enumera todas las hojas booleanas del arbol en orden de
// declaracion. Es la version con seguridad de nombres en compile-time del
// recorrido dinamico por claves: en lugar de iterar un mapa, cada hoja esta
// direccionada por su campo.
func booleanLeaves(p *SuperProfile) []leaf {
	return []leaf{
		// general.movies
		{"terror", &p.General.Movies.Terror, false},
		{"accion", &p.General.Movies.Accion, false},
		{"comedia", &p.General.Movies.Comedia, false},
		{"drama", &p.General.Movies.Drama, false},
		{"romance", &p.General.Movies.Romance, false},
		{"documentales", &p.General.Movies.Documentales, false},
		{"animacion", &p.General.Movies.Animacion, false},
		{"fantastico", &p.General.Movies.Fantastico, false},
		{"ciencia-ficcion", &p.General.Movies.CienciaFiccion, false},
		// general.music
		{"rock", &p.General.Music.Rock, false},
		{"pop", &p.General.Music.Pop, false},
		{"rap", &p.General.Music.Rap, false},
		{"electronica", &p.General.Music.Electronica, false},
		{"jazz", &p.General.Music.Jazz, false},
		{"reggaeton", &p.General.Music.Reggaeton, false},
		{"salsa", &p.General.Music.Salsa, false},
		{"clasica", &p.General.Music.Clasica, false},
		// general.books
		{"novelas", &p.General.Books.Novelas, false},
		{"terror-books", &p.General.Books.TerrorBooks, false},
		{"scifi-books", &p.General.Books.ScifiBooks, false},
		{"poesia", &p.General.Books.Poesia, false},
		{"historia", &p.General.Books.Historia, false},
		{"biografias", &p.General.Books.Biografias, false},
		{"ensayos", &p.General.Books.Ensayos, false},
		{"comics-manga", &p.General.Books.ComicsManga, false},
		// ocio.food
		{"cocina-internacional", &p.Ocio.Food.CocinaInternacional, false},
		{"reposteria", &p.Ocio.Food.Reposteria, false},
		{"comida-saludable", &p.Ocio.Food.ComidaSaludable, false},
		{"comida-vegana", &p.Ocio.Food.ComidaVegana, false},
		{"comida-exotica", &p.Ocio.Food.ComidaExotica, false},
		{"street-food", &p.Ocio.Food.StreetFood, false},
		// ocio.travel
		{"playa", &p.Ocio.Travel.Playa, false},
		{"montana", &p.Ocio.Travel.Montana, false},
		{"ciudades-historicas", &p.Ocio.Travel.CiudadesHistoricas, false},
		{"ecoturismo", &p.Ocio.Travel.Ecoturismo, false},
		{"turismo-cultural", &p.Ocio.Travel.TurismoCultural, false},
		{"cruceros", &p.Ocio.Travel.Cruceros, false},
		// ocio.sports
		{"futbol", &p.Ocio.Sports.Futbol, false},
		{"baloncesto", &p.Ocio.Sports.Baloncesto, false},
		{"tenis", &p.Ocio.Sports.Tenis, false},
		{"running", &p.Ocio.Sports.Running, false},
		{"natacion", &p.Ocio.Sports.Natacion, false},
		{"ciclismo", &p.Ocio.Sports.Ciclismo, false},
		{"artes-marciales", &p.Ocio.Sports.ArtesMarciales, false},
		// ocio.hobbies
		{"gaming", &p.Ocio.Hobbies.Gaming, false},
		{"diy", &p.Ocio.Hobbies.DIY, false},
		{"jardineria", &p.Ocio.Hobbies.Jardineria, false},
		{"coleccionismo", &p.Ocio.Hobbies.Coleccionismo, false},
		{"manualidades", &p.Ocio.Hobbies.Manualidades, false},
		{"modelismo", &p.Ocio.Hobbies.Modelismo, false},
		{"podcasting", &p.Ocio.Hobbies.Podcasting, false},
		// cultura.art
		{"pintura", &p.Cultura.Art.Pintura, false},
		{"fotografia", &p.Cultura.Art.Fotografia, false},
		{"teatro", &p.Cultura.Art.Teatro, false},
		{"escultura", &p.Cultura.Art.Escultura, false},
		{"cine-arte", &p.Cultura.Art.CineArte, false},
		// cultura.tech ('ia' es texto, no entra)
		{"programacion", &p.Cultura.Tech.Programacion, false},
		{"gadgets", &p.Cultura.Tech.Gadgets, false},
		{"blockchain", &p.Cultura.Tech.Blockchain, false},
		{"realidad-virtual", &p.Cultura.Tech.RealidadVirtual, false},
		// cultura.trends
		{"noticias", &p.Cultura.Trends.Noticias, false},
		{"startups", &p.Cultura.Trends.Startups, false},
		{"redes-sociales", &p.Cultura.Trends.RedesSociales, false},
		{"economia", &p.Cultura.Trends.Economia, false},
		{"politica-global", &p.Cultura.Trends.PoliticaGlobal, false},
		// cultura.humor
		{"memes", &p.Cultura.Humor.Memes, false},
		{"chistes", &p.Cultura.Humor.Chistes, false},
		{"standup", &p.Cultura.Humor.Standup, false},
		{"satira", &p.Cultura.Humor.Satira, false},
		// otros.other
		{"filosofia", &p.Otros.Other.Filosofia, false},
		{"psicologia", &p.Otros.Other.Psicologia, false},
		{"politica", &p.Otros.Other.Politica, false},
		{"emprendimiento", &p.Otros.Other.Emprendimiento, false},
		{"desarrollo-personal", &p.Otros.Other.DesarrolloPersonal, false},
		{"autoayuda", &p.Otros.Other.Autoayuda, false},
		// evitar.avoid
		{"spoilers", &p.Evitar.Avoid.Spoilers, true},
		{"temas-sensibles", &p.Evitar.Avoid.TemasSensibles, true},
		{"religion-controversia", &p.Evitar.Avoid.ReligionControversia, true},
		{"politica-extrema", &p.Evitar.Avoid.PoliticaExtrema, true},
		// opciones-avanzadas-ia.externalAnalysis
		{"isEnabled", &p.OpcionesIA.ExternalAnalysis.IsEnabled, false},
		// trabajo.javascriptTech
		{"react", &p.Trabajo.JavascriptTech.React, false},
		{"nodejs", &p.Trabajo.JavascriptTech.NodeJS, false},
		{"express", &p.Trabajo.JavascriptTech.Express, false},
		{"typescript", &p.Trabajo.JavascriptTech.TypeScript, false},
		{"angular", &p.Trabajo.JavascriptTech.Angular, false},
		{"vue", &p.Trabajo.JavascriptTech.Vue, false},
		{"svelte", &p.Trabajo.JavascriptTech.Svelte, false},
	}
}

// LeafIDs devuelve todos los identificadores de hoja booleana del arbol.
func LeafIDs() []string {
	var p SuperProfile
	leaves := booleanLeaves(&p)
	ids := make([]string, 0, len(leaves))
	for _, l := range leaves {
		ids = append(ids, l.id)
	}
	return ids
}

// AvoidLeafIDs devuelve los identificadores de la categoria avoid.
func AvoidLeafIDs() []string {
	var p SuperProfile
	var ids []string
	for _, l := range booleanLeaves(&p) {
		if l.avoided {
			ids = append(ids, l.id)
		}
	}
	return ids
}

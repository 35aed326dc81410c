// Package superprofile define el "super objeto" de preferencias: un arbol de
// forma fija con todas las pestañas, categorias y hojas que representan los
// intereses de una persona. La forma nunca cambia en runtime; solo cambian
// los valores de las hojas. Se serializa completo como un unico documento
// JSONB en la columna profiles.super_profile.
package superprofile

// SuperProfile agrupa las siete pestañas del editor de intereses. Cada hoja
// booleana usa como clave JSON su identificador de interes; esas claves son
// globalmente unicas en todo el arbol porque el aplanado las direcciona por
// identificador pelado, sin ruta.
type SuperProfile struct {
	General    GeneralTab  `json:"general"`
	Ocio       OcioTab     `json:"ocio"`
	Cultura    CulturaTab  `json:"cultura"`
	Otros      OtrosTab    `json:"otros"`
	Evitar     EvitarTab   `json:"evitar"`
	OpcionesIA OpcionesTab `json:"opciones-avanzadas-ia"`
	Trabajo    TrabajoTab  `json:"trabajo"`
}

type GeneralTab struct {
	Movies MoviesCategory `json:"movies"`
	Music  MusicCategory  `json:"music"`
	Books  BooksCategory  `json:"books"`
}

type MoviesCategory struct {
	Terror         bool `json:"terror"`
	Accion         bool `json:"accion"`
	Comedia        bool `json:"comedia"`
	Drama          bool `json:"drama"`
	Romance        bool `json:"romance"`
	Documentales   bool `json:"documentales"`
	Animacion      bool `json:"animacion"`
	Fantastico     bool `json:"fantastico"`
	CienciaFiccion bool `json:"ciencia-ficcion"`
}

type MusicCategory struct {
	Rock        bool `json:"rock"`
	Pop         bool `json:"pop"`
	Rap         bool `json:"rap"`
	Electronica bool `json:"electronica"`
	Jazz        bool `json:"jazz"`
	Reggaeton   bool `json:"reggaeton"`
	Salsa       bool `json:"salsa"`
	Clasica     bool `json:"clasica"`
}

type BooksCategory struct {
	Novelas     bool `json:"novelas"`
	TerrorBooks bool `json:"terror-books"`
	ScifiBooks  bool `json:"scifi-books"`
	Poesia      bool `json:"poesia"`
	Historia    bool `json:"historia"`
	Biografias  bool `json:"biografias"`
	Ensayos     bool `json:"ensayos"`
	ComicsManga bool `json:"comics-manga"`
}

type OcioTab struct {
	Food    FoodCategory    `json:"food"`
	Travel  TravelCategory  `json:"travel"`
	Sports  SportsCategory  `json:"sports"`
	Hobbies HobbiesCategory `json:"hobbies"`
}

type FoodCategory struct {
	CocinaInternacional bool `json:"cocina-internacional"`
	Reposteria          bool `json:"reposteria"`
	ComidaSaludable     bool `json:"comida-saludable"`
	ComidaVegana        bool `json:"comida-vegana"`
	ComidaExotica       bool `json:"comida-exotica"`
	StreetFood          bool `json:"street-food"`
}

type TravelCategory struct {
	Playa              bool `json:"playa"`
	Montana            bool `json:"montana"`
	CiudadesHistoricas bool `json:"ciudades-historicas"`
	Ecoturismo         bool `json:"ecoturismo"`
	TurismoCultural    bool `json:"turismo-cultural"`
	Cruceros           bool `json:"cruceros"`
}

type SportsCategory struct {
	Futbol         bool `json:"futbol"`
	Baloncesto     bool `json:"baloncesto"`
	Tenis          bool `json:"tenis"`
	Running        bool `json:"running"`
	Natacion       bool `json:"natacion"`
	Ciclismo       bool `json:"ciclismo"`
	ArtesMarciales bool `json:"artes-marciales"`
}

type HobbiesCategory struct {
	Gaming        bool `json:"gaming"`
	DIY           bool `json:"diy"`
	Jardineria    bool `json:"jardineria"`
	Coleccionismo bool `json:"coleccionismo"`
	Manualidades  bool `json:"manualidades"`
	Modelismo     bool `json:"modelismo"`
	Podcasting    bool `json:"podcasting"`
}

type CulturaTab struct {
	Art    ArtCategory    `json:"art"`
	Tech   TechCategory   `json:"tech"`
	Trends TrendsCategory `json:"trends"`
	Humor  HumorCategory  `json:"humor"`
}

type ArtCategory struct {
	Pintura    bool `json:"pintura"`
	Fotografia bool `json:"fotografia"`
	Teatro     bool `json:"teatro"`
	Escultura  bool `json:"escultura"`
	CineArte   bool `json:"cine-arte"`
}

// TechCategory contiene la unica hoja no booleana del arbol: IA guarda el
// texto narrativo del analisis generado, no una seleccion.
type TechCategory struct {
	Programacion    bool   `json:"programacion"`
	IA              string `json:"ia"`
	Gadgets         bool   `json:"gadgets"`
	Blockchain      bool   `json:"blockchain"`
	RealidadVirtual bool   `json:"realidad-virtual"`
}

type TrendsCategory struct {
	Noticias       bool `json:"noticias"`
	Startups       bool `json:"startups"`
	RedesSociales  bool `json:"redes-sociales"`
	Economia       bool `json:"economia"`
	PoliticaGlobal bool `json:"politica-global"`
}

type HumorCategory struct {
	Memes   bool `json:"memes"`
	Chistes bool `json:"chistes"`
	Standup bool `json:"standup"`
	Satira  bool `json:"satira"`
}

type OtrosTab struct {
	Other OtherCategory `json:"other"`
}

type OtherCategory struct {
	Filosofia          bool `json:"filosofia"`
	Psicologia         bool `json:"psicologia"`
	Politica           bool `json:"politica"`
	Emprendimiento     bool `json:"emprendimiento"`
	DesarrolloPersonal bool `json:"desarrollo-personal"`
	Autoayuda          bool `json:"autoayuda"`
}

type EvitarTab struct {
	Avoid AvoidCategory `json:"avoid"`
}

// AvoidCategory es la unica categoria cuyas hojas van a la lista de temas a
// evitar al aplanar el arbol.
type AvoidCategory struct {
	Spoilers             bool `json:"spoilers"`
	TemasSensibles       bool `json:"temas-sensibles"`
	ReligionControversia bool `json:"religion-controversia"`
	PoliticaExtrema      bool `json:"politica-extrema"`
}

type OpcionesTab struct {
	ExternalAnalysis ExternalAnalysisCategory `json:"externalAnalysis"`
}

type ExternalAnalysisCategory struct {
	IsEnabled bool `json:"isEnabled"`
}

type TrabajoTab struct {
	JavascriptTech JavascriptTechCategory `json:"javascriptTech"`
}

type JavascriptTechCategory struct {
	React      bool `json:"react"`
	NodeJS     bool `json:"nodejs"`
	Express    bool `json:"express"`
	TypeScript bool `json:"typescript"`
	Angular    bool `json:"angular"`
	Vue        bool `json:"vue"`
	Svelte     bool `json:"svelte"`
}

// OperationResult acompaña a las operaciones que tocan la base de datos:
// exito o captura del fallo, nunca un panic hacia la UI.
type OperationResult struct {
	Success bool  `json:"success"`
	Err     error `json:"error,omitempty"`
}

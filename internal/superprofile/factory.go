package superprofile

// NewEmpty crea una instancia inicial del super objeto: cada booleano en
// false y el campo de texto 'ia' vacio. Al ser una estructura de forma fija,
// el valor cero de Go ya cumple el invariante; la funcion existe para dejar
// explicito el punto unico de creacion.
func NewEmpty() *SuperProfile {
	return &SuperProfile{}
}

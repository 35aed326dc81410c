package superprofile

// ResetAllInterests pone en false todos los booleanos del perfil. El campo de
// texto 'ia' no se toca. Debe ejecutarse antes de volver a aplicar una
// seleccion: las listas planas de la UI representan el estado deseado
// completo, no un delta, y sin reset un interes deseleccionado nunca se
// limpiaria en el arbol.
func ResetAllInterests(p *SuperProfile) {
	for _, l := range booleanLeaves(p) {
		*l.value = false
	}
}

// SetInterestValue establece el valor del interes indicado. Si el
// identificador no existe en ninguna categoria la llamada es un no-op
// silencioso: tolera ids "custom-" de la capa de UI que no tienen hoja. Si la
// unicidad global de claves se violara, todas las hojas coincidentes reciben
// el mismo valor.
func SetInterestValue(p *SuperProfile, interestID string, value bool) {
	for _, l := range booleanLeaves(p) {
		if l.id == interestID {
			*l.value = value
		}
	}
}

// ExtractInterests recorre el arbol y reparte las hojas en true entre la
// lista de seleccionados y la de evitados segun su categoria. Es la inversa
// exacta de reset + marcas sucesivas: ida y vuelta reproduce los mismos
// conjuntos para cualquier seleccion de hojas validas.
func ExtractInterests(p *SuperProfile) (selected, avoided []string) {
	selected = []string{}
	avoided = []string{}
	for _, l := range booleanLeaves(p) {
		if !*l.value {
			continue
		}
		if l.avoided {
			avoided = append(avoided, l.id)
		} else {
			selected = append(selected, l.id)
		}
	}
	return selected, avoided
}

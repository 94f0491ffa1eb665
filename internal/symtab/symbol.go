package symtab

// SymbolKind classifies what a Symbol names.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolVariable
	SymbolFunction
	SymbolType
	SymbolTrait
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVariable:
		return "variable"
	case SymbolFunction:
		return "function"
	case SymbolType:
		return "type"
	case SymbolTrait:
		return "trait"
	default:
		return "invalid"
	}
}

// Symbol is a named entity bound in some Scope: a variable, a function,
// a type, or a trait.
type Symbol struct {
	Name          string
	Kind          SymbolKind
	Type          Type
	GenericParams []string
}

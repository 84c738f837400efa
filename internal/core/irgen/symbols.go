package irgen

// SymbolKind classifies a symbol table entry.
type SymbolKind string

const (
	KindFunction  SymbolKind = "function"
	KindParameter SymbolKind = "parameter"
	KindVariable  SymbolKind = "variable"
)

// Symbol is a named entity seen during parsing.
type Symbol struct {
	Name string
	Kind SymbolKind
}

// SymbolTable is a flat, insertion-ordered table. The first declaration of
// a name wins.
type SymbolTable struct {
	symbols []Symbol
	index   map[string]int
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{index: make(map[string]int)}
}

// Declare adds name unless it is already present.
func (s *SymbolTable) Declare(name string, kind SymbolKind) {
	if _, ok := s.index[name]; ok {
		return
	}
	s.index[name] = len(s.symbols)
	s.symbols = append(s.symbols, Symbol{Name: name, Kind: kind})
}

// Lookup returns the symbol for name.
func (s *SymbolTable) Lookup(name string) (Symbol, bool) {
	i, ok := s.index[name]
	if !ok {
		return Symbol{}, false
	}
	return s.symbols[i], true
}

// All returns a copy of the symbols in declaration order.
func (s *SymbolTable) All() []Symbol {
	out := make([]Symbol, len(s.symbols))
	copy(out, s.symbols)
	return out
}

// Len returns the number of symbols.
func (s *SymbolTable) Len() int {
	return len(s.symbols)
}

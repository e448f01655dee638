package entities

// Person shows plain accessor-based data hiding: the name is only reachable
// through Name and SetName. Not safe for concurrent use.
type Person struct {
	name string
}

// NewPerson creates a person with the given name.
func NewPerson(name string) *Person {
	return &Person{name: name}
}

// Name returns the person's name.
func (p *Person) Name() string {
	return p.name
}

// SetName replaces the person's name.
func (p *Person) SetName(name string) {
	p.name = name
}

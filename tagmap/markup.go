package tagmap

// Attribute is one name="value" pair emitted on an opening tag.
type Attribute struct {
	Name  string
	Value string
}

// RedBullet is a 5×5 red PNG. The embedded newlines are part of the value and
// are emitted verbatim.
const RedBullet = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAUA\n" +
	"AAAFCAYAAACNbyblAAAAHElEQVQI12P4//8/w38GIAXDIBKE0DHxgljNBAAO\n" +
	"9TXL0Y4OHwAAAABJRU5ErkJggg=="

var attributes = map[string][]Attribute{
	"a":      {{Name: "href", Value: "about:blank"}},
	"iframe": {{Name: "src", Value: "about:blank"}},
	"img":    {{Name: "src", Value: RedBullet}},
}

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "command": {}, "embed": {},
	"hr": {}, "img": {}, "input": {}, "keygen": {}, "link": {}, "meta": {},
	"param": {}, "source": {}, "track": {}, "wbr": {},
}

// Attributes returns the mandatory attributes of tag in emission order, or
// nil. The returned slice must not be modified.
func Attributes(tag string) []Attribute {
	return attributes[tag]
}

// IsVoid reports whether tag is a void element (no children, no end tag).
func IsVoid(tag string) bool {
	_, ok := voidElements[tag]

	return ok
}

// VoidElements returns the void element names in no particular order.
func VoidElements() []string {
	out := make([]string, 0, len(voidElements))
	for tag := range voidElements {
		out = append(out, tag)
	}

	return out
}

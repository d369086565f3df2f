package treesitter

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/golst/pkg/tree"
)

// javaLang lists the java.lang classes resolved without an import.
//
//nolint:gochecknoglobals // Lookup table.
var javaLang = map[string]bool{
	"Boolean": true, "Byte": true, "Character": true, "Class": true,
	"Deprecated": true, "Double": true, "Enum": true, "Error": true,
	"Exception": true, "Float": true, "FunctionalInterface": true,
	"IllegalArgumentException": true, "IllegalStateException": true,
	"Integer": true, "Iterable": true, "Long": true, "Math": true,
	"Number": true, "Object": true, "Override": true, "Record": true,
	"Runnable": true, "RuntimeException": true, "Short": true,
	"String": true, "StringBuilder": true, "SuppressWarnings": true,
	"System": true, "Thread": true, "Throwable": true, "Void": true,
}

// typeTable attributes simple type names using explicit imports, the types
// declared in the file and java.lang. Wildcard imports are not expanded.
type typeTable struct {
	pkg      string
	imports  map[string]string
	declared map[string]string
}

func newTypeTable() *typeTable {
	return &typeTable{
		imports:  make(map[string]string),
		declared: make(map[string]string),
	}
}

// addImport records a single-type import.
func (t *typeTable) addImport(fqn string) {
	simple := fqn
	if i := strings.LastIndexByte(fqn, '.'); i >= 0 {
		simple = fqn[i+1:]
	}
	t.imports[simple] = fqn
}

// resolve returns the type a simple name refers to, or nil when it cannot
// be told.
func (t *typeTable) resolve(simple string) tree.Type {
	if fqn, ok := t.imports[simple]; ok {
		return tree.NewClassType(fqn)
	}
	if fqn, ok := t.declared[simple]; ok {
		return tree.NewClassType(fqn)
	}
	if javaLang[simple] {
		return tree.NewClassType("java.lang." + simple)
	}
	return nil
}

// qualify returns the fully qualified name of a dotted reference. A leading
// simple name that resolves is expanded; anything else is taken as already
// qualified.
func (t *typeTable) qualify(dotted string) string {
	head, rest, found := strings.Cut(dotted, ".")
	if !found {
		return dotted
	}
	if typ := t.resolve(head); typ != nil {
		return tree.FullyQualifiedName(typ) + "." + rest
	}
	return dotted
}

// collect records the package and every type declared in the file, so
// references ahead of a declaration resolve too.
func (t *typeTable) collect(root *sitter.Node, src []byte) {
	for _, c := range children(root) {
		if c.Type() == "package_declaration" {
			for _, part := range children(c) {
				if part.Type() == "identifier" || part.Type() == "scoped_identifier" {
					t.pkg = part.Content(src)
				}
			}
		}
	}
	t.collectTypes(root, src, "")
}

func (t *typeTable) collectTypes(n *sitter.Node, src []byte, outer string) {
	for _, c := range children(n) {
		switch c.Type() {
		case "class_declaration", "interface_declaration", "enum_declaration",
			"record_declaration", "annotation_type_declaration":
		default:
			continue
		}
		name := c.ChildByFieldName("name")
		if name == nil {
			continue
		}
		simple := name.Content(src)
		qualified := simple
		switch {
		case outer != "":
			qualified = outer + "." + simple
		case t.pkg != "":
			qualified = t.pkg + "." + simple
		}
		if _, taken := t.declared[simple]; !taken {
			t.declared[simple] = qualified
		}
		if body := c.ChildByFieldName("body"); body != nil {
			t.collectTypes(body, src, qualified)
		}
	}
}

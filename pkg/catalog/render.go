package catalog

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chat-api/modelcatalog/pkg/models"
)

// indentUnit is the per-level indentation used by the tree rendering
const indentUnit = "  "

// RenderTree renders a categorized catalog as human-readable lines. indent is
// the number of spaces prepended to every line. Keys are rendered in sorted
// order at each level so that equal catalogs always produce identical output;
// other_versions keeps the order the service returned.
func RenderTree(catalog models.CategorizedCatalog, indent int) []string {
	base := strings.Repeat(" ", indent)
	var lines []string

	for _, provider := range sortedKeys(catalog) {
		lines = append(lines, fmt.Sprintf("%sProvider: %s", base, provider))

		families := catalog[provider]
		for _, family := range sortedKeys(families) {
			lines = append(lines, fmt.Sprintf("%s%sFamily: %s", base, indentUnit, family))

			types := families[family]
			for _, typeName := range sortedKeys(types) {
				lines = append(lines, fmt.Sprintf("%s%sType: %s", base, strings.Repeat(indentUnit, 2), typeName))

				entry := types[typeName]
				if entry.HasLatest() {
					lines = append(lines, fmt.Sprintf("%s%sLatest: %s", base, strings.Repeat(indentUnit, 3), *entry.Latest))
				}
				if entry.HasOtherVersions() {
					lines = append(lines, fmt.Sprintf("%s%sOther versions: %s", base, strings.Repeat(indentUnit, 3), strings.Join(entry.OtherVersions, ", ")))
				}
			}
		}
	}

	return lines
}

// FprintTree writes the tree rendering of catalog to w, one line at a time
func FprintTree(w io.Writer, catalog models.CategorizedCatalog, indent int) error {
	for _, line := range RenderTree(catalog, indent) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package checksum

// ValidateTableForTest exposes validateTable.
var ValidateTableForTest = validateTable

// AliasTableForTest returns a deep copy of the shipped alias table.
func AliasTableForTest() map[Algorithm][]string {
	table := make(map[Algorithm][]string, len(aliases))
	for alg, names := range aliases {
		table[alg] = append([]string(nil), names...)
	}
	return table
}

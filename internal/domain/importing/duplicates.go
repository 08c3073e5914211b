package importing

// DetectDuplicates marca los índices cuya clave natural ya apareció antes en el
// archivo: la primera ocurrencia se conserva, las siguientes se rechazan.
// Claves vacías se ignoran (su ausencia la reporta el validador).
// El chequeo es local al archivo: registros ya persistidos se actualizan vía
// upsert y no cuentan como duplicados.
func DetectDuplicates(keys []string) map[int]bool {
	seen := make(map[string]bool, len(keys))
	duplicates := make(map[int]bool)
	for idx, key := range keys {
		if key == "" {
			continue
		}
		if seen[key] {
			duplicates[idx] = true
			continue
		}
		seen[key] = true
	}
	return duplicates
}

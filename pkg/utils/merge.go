package utils

// MergeMaps deep-merges maps left to right. Nested maps are merged
// recursively; any other value from a later map replaces the earlier one.
// Inputs are not modified.
func MergeMaps(maps ...map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})
	for _, m := range maps {
		for key, value := range m {
			existing, okExisting := result[key].(map[string]interface{})
			incoming, okIncoming := value.(map[string]interface{})
			if okExisting && okIncoming {
				result[key] = MergeMaps(existing, incoming)
				continue
			}
			result[key] = value
		}
	}
	return result
}

package log

import "sort"

// KV represents the key-value pairs of a single log entry. Keys are
// emitted in sorted order so log lines are deterministic.
type KV map[string]any

// kvToArgs converts the first KV map to the flat argument list slog
// expects. Extra maps are ignored.
func kvToArgs(keyVals ...KV) []any {
	args := []any{}
	if len(keyVals) == 0 {
		return args
	}

	kv := keyVals[0]
	keys := make([]string, 0, len(kv))
	for key := range kv {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		args = append(args, key, kv[key])
	}
	return args
}

// kvToArgsNs is kvToArgs with the namespace prepended as the "ns" pair.
func kvToArgsNs(namespace string, keyVals ...KV) []any {
	return append([]any{"ns", namespace}, kvToArgs(keyVals...)...)
}

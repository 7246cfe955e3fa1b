package rhyme

type group struct {
	key   string
	label string
}

// Pattern assigns a rhyme label to every verse. Labels are letters handed out
// in order of first appearance; blank verses get "".
func Pattern(verses []string) []string {
	return Labels(Keys(verses))
}

// Labels assigns labels to precomputed rhyme keys. A key reuses the label of
// the first earlier group whose founding key it matches.
func Labels(keys []string) []string {
	labels := make([]string, len(keys))
	var groups []group
	next := 'A'
	for i, key := range keys {
		if key == "" {
			continue
		}
		found := false
		for _, g := range groups {
			if Match(key, g.key) {
				labels[i] = g.label
				found = true
				break
			}
		}
		if found {
			continue
		}
		label := string(next)
		next++
		groups = append(groups, group{key: key, label: label})
		labels[i] = label
	}
	return labels
}

// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package syntax

// Interner hands out one canonical string per distinct token text.
type Interner struct {
	texts map[string]string
}

func NewInterner() *Interner {
	return &Interner{texts: make(map[string]string)}
}

func (i *Interner) Intern(text string) string {
	if canonical, ok := i.texts[text]; ok {
		return canonical
	}
	i.texts[text] = text
	return text
}

// Len returns the number of distinct texts seen.
func (i *Interner) Len() int {
	return len(i.texts)
}

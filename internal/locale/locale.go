// SPDX-License-Identifier: AGPL-3.0-or-later

// Package locale holds the operator-facing message bundles.
package locale

// Messages is one language's set of report strings. Formatting verbs are
// part of the contract: BranchHeader takes the branch name, NoCommits takes
// the author and the date.
type Messages struct {
	BranchHeader  string
	NoCommits     string
	SendingPrompt string
	Response      string
}

var bundles = map[string]Messages{
	"en": {
		BranchHeader:  "🔀 Branch: %s",
		NoCommits:     "no commits by user %q for %s",
		SendingPrompt: "📤 Sending prompt to the summarization API:",
		Response:      "📥 Response from the summarization API:",
	},
	"ru": {
		BranchHeader:  "🔀 Ветка: %s",
		NoCommits:     "нет коммитов пользователя %q за %s",
		SendingPrompt: "📤 Отправляем запрос в API суммаризации:",
		Response:      "📥 Ответ API суммаризации:",
	},
}

// For returns the bundle for code, falling back to English.
func For(code string) Messages {
	if m, ok := bundles[code]; ok {
		return m
	}
	return bundles["en"]
}

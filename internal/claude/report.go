package claude

// Match is one settings entry recognized as belonging to the identity.
type Match struct {
	Index    int
	Commands []string
	Current  bool // one of Commands equals the resolved notifier path
}

// Report is a read-only snapshot of the identity's registration state.
type Report struct {
	SettingsPath  string
	DirExists     bool
	FileExists    bool
	NotifierPath  string
	NotifierFound bool
	Matches       []Match
	Configured    bool
	NeedsUpdate   bool
}

// Inspect reads the settings file and describes the identity's entries.
// Unlike IsConfigured and NeedsUpdate it returns read and parse errors; the
// partially filled Report is still returned alongside them.
func (m *Manager) Inspect() (Report, error) {
	report := Report{
		SettingsPath: m.settingsPath,
		DirExists:    m.InstalledPrerequisite(),
	}
	report.NotifierPath, report.NotifierFound = m.resolveNotifier()

	doc, exists, err := readDocument(m.settingsPath)
	report.FileExists = exists
	if err != nil {
		return report, err
	}
	if !exists {
		return report, nil
	}

	entries, ok := kindEntries(doc, m.identity.Kind())
	if !ok {
		return report, nil
	}

	indices := matchingIndices(m.identity, entries)
	for _, i := range indices {
		obj := entries[i].(map[string]any)
		report.Matches = append(report.Matches, Match{
			Index:    i,
			Commands: entryCommands(obj),
			Current:  report.NotifierFound && hasCommand(obj, report.NotifierPath),
		})
	}
	report.Configured = len(indices) > 0
	if report.NotifierFound {
		report.NeedsUpdate = drifted(entries, indices, report.NotifierPath)
	}
	return report, nil
}

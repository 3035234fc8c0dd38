package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PickerEntry is one row in the picker list.
type PickerEntry struct {
	Name  string
	IsDir bool
}

// FilePicker is the modal overlay for choosing a model file. It only holds
// list state; the frontends render it and feed it keys.
type FilePicker struct {
	Active  bool
	Dir     string
	Entries []PickerEntry
	Cursor  int
}

// NewFilePicker creates a closed picker.
func NewFilePicker() *FilePicker {
	return &FilePicker{}
}

// Show opens the picker on dir.
func (p *FilePicker) Show(dir string) error {
	entries, err := listModelDir(dir)
	if err != nil {
		return err
	}
	p.Active = true
	p.Dir = dir
	p.Entries = entries
	p.Cursor = 0
	return nil
}

// Close hides the picker. The directory is kept so reopening resumes there.
func (p *FilePicker) Close() {
	p.Active = false
}

// MoveUp moves the cursor one row up.
func (p *FilePicker) MoveUp() {
	if p.Cursor > 0 {
		p.Cursor--
	}
}

// MoveDown moves the cursor one row down.
func (p *FilePicker) MoveDown() {
	if p.Cursor < len(p.Entries)-1 {
		p.Cursor++
	}
}

// Enter acts on the selected entry: descends into directories, and returns
// (path, true) for a model file. An unreadable directory leaves the listing
// unchanged.
func (p *FilePicker) Enter() (path string, load bool) {
	if len(p.Entries) == 0 {
		return "", false
	}
	e := p.Entries[p.Cursor]
	target := filepath.Join(p.Dir, e.Name)
	if e.IsDir {
		p.Show(target)
		return "", false
	}
	return target, true
}

// listModelDir reads dir into picker rows: "..", subdirectories, then model
// files, each group sorted by name. Hidden entries are skipped.
func listModelDir(dir string) ([]PickerEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var dirs, files []PickerEntry
	for _, e := range dirEntries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if e.IsDir() {
			dirs = append(dirs, PickerEntry{Name: name, IsDir: true})
			continue
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ".obj", ".glb", ".gltf":
			files = append(files, PickerEntry{Name: name})
		}
	}

	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name < dirs[j].Name })
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	entries := make([]PickerEntry, 0, len(dirs)+len(files)+1)
	entries = append(entries, PickerEntry{Name: "..", IsDir: true})
	entries = append(entries, dirs...)
	entries = append(entries, files...)
	return entries, nil
}

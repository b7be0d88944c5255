// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func allIds() []Id {
	return []Id{
		DirectoryNotFoundId,
		DescriptorNotFoundId,
		MalformedDescriptorId,
		InvalidNameFieldId,
		DescriptorWriteFailedId,
		ConfigLoadFailedId,
	}
}

func TestId_Constants(t *testing.T) {
	seen := make(map[Id]bool)
	for _, id := range allIds() {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	if DirectoryNotFoundId != 1 {
		t.Errorf("DirectoryNotFoundId = %d, want 1", DirectoryNotFoundId)
	}
}

func TestIssuesMapCompleteness(t *testing.T) {
	for _, id := range allIds() {
		issue := Get(id)
		if issue == nil {
			t.Errorf("Issue with ID %d is not in the issues map", id)
			continue
		}
		if issue.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, issue.Id())
		}
		if strings.TrimSpace(string(issue.MarkdownMsg())) == "" {
			t.Errorf("Issue %d has empty MarkdownMsg", id)
		}
	}

	if got := len(Values()); got != len(allIds()) {
		t.Errorf("len(Values()) = %d, want %d", got, len(allIds()))
	}
}

func TestGetUnknown(t *testing.T) {
	if Get(Id(0)) != nil {
		t.Error("Get(0) should return nil")
	}
	if Get(Id(999)) != nil {
		t.Error("Get(999) should return nil")
	}
}

func TestValuesOrdered(t *testing.T) {
	values := Values()
	for i := 1; i < len(values); i++ {
		if values[i-1].Id() >= values[i].Id() {
			t.Fatalf("Values() not ordered by ID at %d: %d >= %d", i, values[i-1].Id(), values[i].Id())
		}
	}
}

func TestIssue_ExtLinksIsClone(t *testing.T) {
	issue := Get(InvalidNameFieldId)
	links := issue.ExtLinks()
	if len(links) == 0 {
		t.Fatal("InvalidNameFieldId should carry an external link")
	}
	links[0] = "https://example.invalid"
	if issue.ExtLinks()[0] == "https://example.invalid" {
		t.Error("ExtLinks() should return a clone")
	}
}

func TestIssue_Render(t *testing.T) {
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	rendered, err := Get(InvalidNameFieldId).Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(rendered, "## See also") {
		t.Error("Render() should append the See also section when links exist")
	}
	if !strings.Contains(rendered, "package-json#name") {
		t.Error("Render() should list the external link")
	}

	rendered, err = Get(MalformedDescriptorId).Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if strings.Contains(rendered, "See also") {
		t.Error("Render() should not add See also without links")
	}
}

func TestAllIssuesRenderWithGlamour(t *testing.T) {
	for _, issue := range Values() {
		rendered, err := issue.Render("notty")
		if err != nil {
			t.Errorf("Issue %d failed to render: %v", issue.Id(), err)
		}
		if strings.TrimSpace(rendered) == "" {
			t.Errorf("Issue %d rendered to empty string", issue.Id())
		}
	}
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"campus-assistant/internal/chat"
	"campus-assistant/internal/chat/repository"
	"campus-assistant/internal/model"
	"campus-assistant/internal/router"
)

// handleFaculty extracts the person name from the message, searches the
// directory and formats one of three shapes: no match, single record, list.
func (uc *implUseCase) handleFaculty(ctx context.Context, sc model.Scope, message string) chat.QueryResult {
	name, err := router.ExtractName(message)
	if err != nil {
		return chat.Unanswered(MsgFacultyNameNeeded)
	}

	uc.l.Infof(ctx, "chat.handleFaculty: user=%s query=%q", sc.UserID, name)

	records, err := uc.repo.SearchFaculty(ctx, sc, repository.SearchFacultyOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "chat.handleFaculty: SearchFaculty failed: %v", err)
		return chat.Unanswered(MsgFacultyUnavail)
	}

	unique := dedupeFaculty(records)

	switch len(unique) {
	case 0:
		return chat.Unanswered(fmt.Sprintf(MsgFacultyNoMatch, name))
	case 1:
		return chat.Answered(formatFacultyDetail(unique[0]))
	default:
		return chat.Answered(formatFacultyList(unique))
	}
}

// dedupeFaculty collapses records sharing an ID. Positions follow the first
// occurrence of each ID; the record kept is the last seen.
func dedupeFaculty(records []model.Faculty) []model.Faculty {
	seen := make(map[string]int, len(records))
	unique := make([]model.Faculty, 0, len(records))
	for _, f := range records {
		if idx, ok := seen[f.ID]; ok {
			unique[idx] = f
			continue
		}
		seen[f.ID] = len(unique)
		unique = append(unique, f)
	}
	return unique
}

func formatFacultyDetail(f model.Faculty) string {
	status := "Busy"
	statusIcon := "❌"
	availability := MsgFacultyBusy
	if f.IsAvailable {
		status = "Available"
		statusIcon = "✅"
		availability = MsgFacultyAvailable
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("**%s**\n\n", f.Name))
	b.WriteString(fmt.Sprintf("📍 Cabin: %s\n", f.Cabin))
	b.WriteString(fmt.Sprintf("🏛️ Department: %s\n", f.Department))
	b.WriteString(fmt.Sprintf("📊 Status: %s %s\n", statusIcon, status))
	if f.Email != "" {
		b.WriteString(fmt.Sprintf("📧 Email: %s\n", f.Email))
	}
	b.WriteString("\n" + availability)
	return b.String()
}

func formatFacultyList(records []model.Faculty) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(MsgFacultyMultiple, len(records)))
	for _, f := range records {
		b.WriteString(fmt.Sprintf(MsgFacultyListItem, f.Name, f.Cabin, f.Department))
	}
	return b.String()
}

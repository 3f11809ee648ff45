package usecase

import (
	"context"
	"fmt"
	"strings"

	"campus-assistant/internal/chat"
	"campus-assistant/internal/model"
)

// handleClassroom answers "where can I sit" questions with the list of
// currently free rooms.
func (uc *implUseCase) handleClassroom(ctx context.Context, sc model.Scope) chat.QueryResult {
	rooms, err := uc.repo.FreeClassrooms(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "chat.handleClassroom: FreeClassrooms failed: %v", err)
		return chat.Unanswered(MsgClassroomUnavailable)
	}

	if len(rooms) == 0 {
		return chat.Unanswered(MsgClassroomAllOccupied)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(MsgClassroomHeader, uc.now().Format("Monday")))
	for _, room := range rooms {
		b.WriteString(fmt.Sprintf(MsgClassroomLine, room.RoomNumber, room.Building, room.AvailableUntil))
	}

	return chat.Answered(b.String())
}

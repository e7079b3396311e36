package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerMessagingTools() {
	s.mcp.AddTool(mcp.NewTool("reply_to_thread",
		mcp.WithDescription("Reply to a support thread. The reply is delivered on whatever channel the thread was opened on (chat or email)."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("The reply text"),
		),
	), s.handleReplyToThread)

	s.mcp.AddTool(mcp.NewTool("send_chat",
		mcp.WithDescription("Send a chat message on a support thread."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The chat message text"),
		),
	), s.handleSendChat)

	s.mcp.AddTool(mcp.NewTool("send_email",
		mcp.WithDescription("Send an email on a support thread."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
		mcp.WithString("textContent",
			mcp.Required(),
			mcp.Description("The email body text"),
		),
		mcp.WithString("subject",
			mcp.Description("Optional subject; defaults to the thread's existing subject"),
		),
	), s.handleSendEmail)

	s.mcp.AddTool(mcp.NewTool("create_note",
		mcp.WithDescription("Attach an internal note to a support thread. Notes are never visible to the customer."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The note text"),
		),
	), s.handleCreateNote)

	s.mcp.AddTool(mcp.NewTool("delete_note",
		mcp.WithDescription("Delete an internal note."),
		mcp.WithString("noteId",
			mcp.Required(),
			mcp.Description("The note ID"),
		),
	), s.handleDeleteNote)
}

func (s *Server) handleReplyToThread(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	threadID, err := request.RequireString("threadId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.client.ReplyToThread(ctx, threadID, message); err != nil {
		return apiError(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Reply sent on thread %s.", threadID)), nil
}

func (s *Server) handleSendChat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	threadID, err := request.RequireString("threadId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	chat, err := s.client.SendChat(ctx, threadID, text)
	if err != nil {
		return apiError(err), nil
	}
	return jsonResult(chat)
}

func (s *Server) handleSendEmail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	threadID, err := request.RequireString("threadId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	textContent, err := request.RequireString("textContent")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	subject := request.GetString("subject", "")

	email, err := s.client.SendThreadEmail(ctx, threadID, textContent, subject)
	if err != nil {
		return apiError(err), nil
	}
	return jsonResult(email)
}

func (s *Server) handleCreateNote(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	threadID, err := request.RequireString("threadId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	note, err := s.client.CreateNote(ctx, threadID, text)
	if err != nil {
		return apiError(err), nil
	}
	return jsonResult(note)
}

func (s *Server) handleDeleteNote(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	noteID, err := request.RequireString("noteId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.client.DeleteNote(ctx, noteID); err != nil {
		return apiError(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Note %s deleted.", noteID)), nil
}

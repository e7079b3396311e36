package plain

import (
	"context"
	"fmt"
)

const replyToThreadMutation = `
mutation replyToThread($input: ReplyToThreadInput!) {
  replyToThread(input: $input) {` + mutationErrorFields + `
  }
}`

// ReplyToThread sends a reply on a thread; the remote system picks the
// channel (chat or email) that the thread was opened on.
func (c *Client) ReplyToThread(ctx context.Context, threadID, message string) error {
	var resp struct {
		ReplyToThread struct {
			Error *MutationError `json:"error"`
		} `json:"replyToThread"`
	}
	input := map[string]interface{}{
		"threadId":    threadID,
		"textContent": message,
	}
	if err := c.run(ctx, replyToThreadMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return err
	}
	return resp.ReplyToThread.Error.AsError()
}

const sendChatMutation = `
mutation sendChat($input: SendChatInput!) {
  sendChat(input: $input) {
    chat {
      id
      text
      createdAt {
        iso8601
      }
    }` + mutationErrorFields + `
  }
}`

// ChatMessage is a chat message sent on a thread.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt Timestamp `json:"createdAt"`
}

// SendChat sends a chat message on a thread.
func (c *Client) SendChat(ctx context.Context, threadID, text string) (*ChatMessage, error) {
	var resp struct {
		SendChat struct {
			Chat  *ChatMessage   `json:"chat"`
			Error *MutationError `json:"error"`
		} `json:"sendChat"`
	}
	input := map[string]interface{}{
		"threadId": threadID,
		"text":     text,
	}
	if err := c.run(ctx, sendChatMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	if err := resp.SendChat.Error.AsError(); err != nil {
		return nil, err
	}
	if resp.SendChat.Chat == nil {
		return nil, fmt.Errorf("sendChat: %w", ErrNoPayload)
	}
	return resp.SendChat.Chat, nil
}

const sendThreadEmailMutation = `
mutation sendThreadEmail($input: SendThreadEmailInput!) {
  sendThreadEmail(input: $input) {
    email {
      id
      subject
      textContent
      createdAt {
        iso8601
      }
    }` + mutationErrorFields + `
  }
}`

// Email is an email sent on a thread.
type Email struct {
	ID          string    `json:"id"`
	Subject     *string   `json:"subject"`
	TextContent *string   `json:"textContent"`
	CreatedAt   Timestamp `json:"createdAt"`
}

// SendThreadEmail sends an email on a thread. subject may be empty, in
// which case the remote system threads it under the existing subject.
func (c *Client) SendThreadEmail(ctx context.Context, threadID, textContent, subject string) (*Email, error) {
	input := map[string]interface{}{
		"threadId":    threadID,
		"textContent": textContent,
	}
	if subject != "" {
		input["subject"] = subject
	}
	var resp struct {
		SendThreadEmail struct {
			Email *Email         `json:"email"`
			Error *MutationError `json:"error"`
		} `json:"sendThreadEmail"`
	}
	if err := c.run(ctx, sendThreadEmailMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	if err := resp.SendThreadEmail.Error.AsError(); err != nil {
		return nil, err
	}
	if resp.SendThreadEmail.Email == nil {
		return nil, fmt.Errorf("sendThreadEmail: %w", ErrNoPayload)
	}
	return resp.SendThreadEmail.Email, nil
}

const createNoteMutation = `
mutation createNote($input: CreateNoteInput!) {
  createNote(input: $input) {
    note {
      id
      text
      createdAt {
        iso8601
      }
    }` + mutationErrorFields + `
  }
}`

// Note is an internal note on a thread, invisible to the customer.
type Note struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt Timestamp `json:"createdAt"`
}

// CreateNote attaches an internal note to a thread.
func (c *Client) CreateNote(ctx context.Context, threadID, text string) (*Note, error) {
	var resp struct {
		CreateNote struct {
			Note  *Note          `json:"note"`
			Error *MutationError `json:"error"`
		} `json:"createNote"`
	}
	input := map[string]interface{}{
		"threadId": threadID,
		"text":     text,
	}
	if err := c.run(ctx, createNoteMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	if err := resp.CreateNote.Error.AsError(); err != nil {
		return nil, err
	}
	if resp.CreateNote.Note == nil {
		return nil, fmt.Errorf("createNote: %w", ErrNoPayload)
	}
	return resp.CreateNote.Note, nil
}

const deleteNoteMutation = `
mutation deleteNote($input: DeleteNoteInput!) {
  deleteNote(input: $input) {` + mutationErrorFields + `
  }
}`

// DeleteNote removes an internal note.
func (c *Client) DeleteNote(ctx context.Context, noteID string) error {
	var resp struct {
		DeleteNote struct {
			Error *MutationError `json:"error"`
		} `json:"deleteNote"`
	}
	input := map[string]interface{}{"noteId": noteID}
	if err := c.run(ctx, deleteNoteMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return err
	}
	return resp.DeleteNote.Error.AsError()
}

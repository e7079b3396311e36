package tools

import (
	"context"
	"fmt"

	"github.com/tellahq/plain-mcp/internal/plain"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerThreadTools() {
	s.mcp.AddTool(mcp.NewTool("create_thread",
		mcp.WithDescription("Create a new support thread for a customer with an initial message."),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("ID of the customer the thread belongs to"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Thread title"),
		),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("Text of the initial message"),
		),
		mcp.WithNumber("priority",
			mcp.Description("Priority: 0=urgent, 1=high, 2=normal, 3=low (default: workspace default)"),
			mcp.Min(0),
			mcp.Max(3),
		),
		mcp.WithArray("labelTypeIds",
			mcp.Description("Label type IDs to apply to the new thread"),
			mcp.WithStringItems(),
		),
	), s.handleCreateThread)

	s.mcp.AddTool(mcp.NewTool("get_thread",
		mcp.WithDescription("Get a support thread by its ID."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
	), s.handleGetThread)

	s.mcp.AddTool(mcp.NewTool("get_thread_by_external_id",
		mcp.WithDescription("Get a support thread by its external ID, scoped to a customer."),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("ID of the customer the thread belongs to"),
		),
		mcp.WithString("externalId",
			mcp.Required(),
			mcp.Description("The external ID assigned when the thread was created"),
		),
	), s.handleGetThreadByExternalID)

	s.mcp.AddTool(mcp.NewTool("list_threads",
		mcp.WithDescription("List support threads filtered by status, enriched with each thread's customer display name."),
		mcp.WithString("status",
			mcp.Description("Status filter: todo, snoozed or done (default: todo)"),
			mcp.Enum("todo", "snoozed", "done"),
		),
		mcp.WithNumber("pageSize",
			mcp.Description("Maximum number of threads to return, 1-100 (default: 25)"),
			mcp.Min(1),
			mcp.Max(100),
		),
	), s.handleListThreads)

	s.mcp.AddTool(mcp.NewTool("list_customer_threads",
		mcp.WithDescription("List a customer's support threads."),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithNumber("pageSize",
			mcp.Description("Maximum number of threads to return, 1-100 (default: 25)"),
			mcp.Min(1),
			mcp.Max(100),
		),
	), s.handleListCustomerThreads)

	s.mcp.AddTool(mcp.NewTool("update_thread_title",
		mcp.WithDescription("Update the title of a support thread."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The new title"),
		),
	), s.handleUpdateThreadTitle)

	s.mcp.AddTool(mcp.NewTool("update_thread_external_id",
		mcp.WithDescription("Set the external ID on a support thread."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
		mcp.WithString("externalId",
			mcp.Required(),
			mcp.Description("The external ID to set"),
		),
	), s.handleUpdateThreadExternalID)

	s.mcp.AddTool(mcp.NewTool("set_thread_priority",
		mcp.WithDescription("Set the priority of a support thread."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
		mcp.WithNumber("priority",
			mcp.Required(),
			mcp.Description("Priority: 0=urgent, 1=high, 2=normal, 3=low"),
			mcp.Min(0),
			mcp.Max(3),
		),
	), s.handleSetThreadPriority)

	s.mcp.AddTool(mcp.NewTool("assign_thread",
		mcp.WithDescription("Assign a support thread to a workspace user."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
		mcp.WithString("userId",
			mcp.Required(),
			mcp.Description("ID of the user to assign the thread to"),
		),
	), s.handleAssignThread)

	s.mcp.AddTool(mcp.NewTool("unassign_thread",
		mcp.WithDescription("Remove the current assignee from a support thread."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
	), s.handleUnassignThread)

	s.mcp.AddTool(mcp.NewTool("mark_thread_as_done",
		mcp.WithDescription("Mark a support thread as done."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
	), s.handleMarkThreadAsDone)

	s.mcp.AddTool(mcp.NewTool("mark_thread_as_todo",
		mcp.WithDescription("Mark a support thread as todo, clearing any snooze."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
	), s.handleMarkThreadAsTodo)

	s.mcp.AddTool(mcp.NewTool("snooze_thread",
		mcp.WithDescription("Snooze a support thread, either until the customer replies or for a fixed duration."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
		mcp.WithString("mode",
			mcp.Required(),
			mcp.Description("Snooze mode: wait_for_customer_reply (no duration allowed) or wait_for_duration (duration required)"),
			mcp.Enum(plain.SnoozeModeWaitForReply, plain.SnoozeModeWaitForDuration),
		),
		mcp.WithNumber("durationSeconds",
			mcp.Description("Snooze duration in seconds, 60-5184000. Required with wait_for_duration, forbidden with wait_for_customer_reply."),
			mcp.Min(plain.SnoozeMinSeconds),
			mcp.Max(plain.SnoozeMaxSeconds),
		),
	), s.handleSnoozeThread)

	s.mcp.AddTool(mcp.NewTool("add_thread_labels",
		mcp.WithDescription("Apply labels to a support thread."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
		mcp.WithArray("labelTypeIds",
			mcp.Required(),
			mcp.Description("Label type IDs to apply"),
			mcp.WithStringItems(),
		),
	), s.handleAddThreadLabels)

	s.mcp.AddTool(mcp.NewTool("remove_thread_labels",
		mcp.WithDescription("Remove labels from a support thread. Takes label IDs (not label type IDs); use list_thread_labels to find them."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
		mcp.WithArray("labelIds",
			mcp.Required(),
			mcp.Description("Label IDs to remove"),
			mcp.WithStringItems(),
		),
	), s.handleRemoveThreadLabels)

	s.mcp.AddTool(mcp.NewTool("set_thread_tenant",
		mcp.WithDescription("Associate a support thread with a tenant."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
		mcp.WithString("tenantIdentifier",
			mcp.Required(),
			mcp.Description("External ID of the tenant"),
		),
	), s.handleSetThreadTenant)

	s.mcp.AddTool(mcp.NewTool("create_thread_link",
		mcp.WithDescription("Attach an external URL (issue tracker, document, ...) to a support thread."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The URL to attach"),
		),
		mcp.WithString("label",
			mcp.Description("Optional display label for the link"),
		),
	), s.handleCreateThreadLink)

	s.mcp.AddTool(mcp.NewTool("list_thread_labels",
		mcp.WithDescription("List the labels currently applied to a support thread."),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The thread ID"),
		),
	), s.handleListThreadLabels)
}

func (s *Server) handleCreateThread(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, err := request.RequireString("customerId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	labelTypeIDs, err := stringSliceArg(request, "labelTypeIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	in := plain.CreateThreadInput{
		CustomerID:   customerID,
		Title:        title,
		Message:      message,
		LabelTypeIDs: labelTypeIDs,
	}
	if _, ok := request.GetArguments()["priority"]; ok {
		priority := request.GetInt("priority", -1)
		if _, err := plain.PriorityName(priority); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		in.Priority = &priority
	}

	thread, err := s.client.CreateThread(ctx, in)
	if err != nil {
		return apiError(err), nil
	}
	return jsonResult(threadView(*thread, ""))
}

func (s *Server) handleGetThread(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	threadID, err := request.RequireString("threadId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	thread, err := s.client.Thread(ctx, threadID)
	if err != nil {
		return apiError(err), nil
	}
	if thread == nil {
		return mcp.NewToolResultText(fmt.Sprintf("No thread found with id %s.", threadID)), nil
	}
	return jsonResult(threadView(*thread, ""))
}

func (s *Server) handleGetThreadByExternalID(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, err := request.RequireString("customerId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	externalID, err := request.RequireString("externalId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	thread, err := s.client.ThreadByExternalID(ctx, customerID, externalID)
	if err != nil {
		return apiError(err), nil
	}
	if thread == nil {
		return mcp.NewToolResultText(fmt.Sprintf("No thread found with external id %s for customer %s.", externalID, customerID)), nil
	}
	return jsonResult(threadView(*thread, ""))
}

func (s *Server) handleListThreads(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := request.GetString("status", "todo")
	status, err := plain.ThreadStatusFromFilter(filter)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pageSize, err := pageSizeArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	items, page, err := s.client.ThreadsWithCustomerNames(ctx, status, pageSize)
	if err != nil {
		return apiError(err), nil
	}
	if len(items) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No threads with status %s.", filter)), nil
	}

	views := make([]threadJSON, 0, len(items))
	for _, item := range items {
		views = append(views, threadView(item.Thread, item.CustomerName))
	}
	return pagedResult(views, page)
}

func (s *Server) handleListCustomerThreads(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, err := request.RequireString("customerId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pageSize, err := pageSizeArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	threads, err := s.client.CustomerThreads(ctx, customerID, pageSize)
	if err != nil {
		return apiError(err), nil
	}
	if len(threads) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No threads found for customer %s.", customerID)), nil
	}

	views := make([]threadJSON, 0, len(threads))
	for _, th := range threads {
		views = append(views, threadView(th, ""))
	}
	return jsonResult(views)
}

// threadMutationHandler wraps the family of single-thread mutations whose
// handlers differ only in which client call they make.
func (s *Server) threadMutationHandler(ctx context.Context, request mcp.CallToolRequest, call func(ctx context.Context, threadID string) (*plain.Thread, error)) (*mcp.CallToolResult, error) {
	threadID, err := request.RequireString("threadId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	thread, err := call(ctx, threadID)
	if err != nil {
		return apiError(err), nil
	}
	return jsonResult(threadView(*thread, ""))
}

func (s *Server) handleUpdateThreadTitle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.threadMutationHandler(ctx, request, func(ctx context.Context, threadID string) (*plain.Thread, error) {
		return s.client.UpdateThreadTitle(ctx, threadID, title)
	})
}

func (s *Server) handleUpdateThreadExternalID(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	externalID, err := request.RequireString("externalId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.threadMutationHandler(ctx, request, func(ctx context.Context, threadID string) (*plain.Thread, error) {
		return s.client.UpdateThreadExternalID(ctx, threadID, externalID)
	})
}

func (s *Server) handleSetThreadPriority(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	priority, err := request.RequireInt("priority")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, err := plain.PriorityName(priority); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.threadMutationHandler(ctx, request, func(ctx context.Context, threadID string) (*plain.Thread, error) {
		return s.client.ChangeThreadPriority(ctx, threadID, priority)
	})
}

func (s *Server) handleAssignThread(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := request.RequireString("userId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.threadMutationHandler(ctx, request, func(ctx context.Context, threadID string) (*plain.Thread, error) {
		return s.client.AssignThread(ctx, threadID, userID)
	})
}

func (s *Server) handleUnassignThread(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.threadMutationHandler(ctx, request, s.client.UnassignThread)
}

func (s *Server) handleMarkThreadAsDone(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.threadMutationHandler(ctx, request, s.client.MarkThreadAsDone)
}

func (s *Server) handleMarkThreadAsTodo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.threadMutationHandler(ctx, request, s.client.MarkThreadAsTodo)
}

func (s *Server) handleSnoozeThread(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode, err := request.RequireString("mode")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	// -1 marks the duration as absent for the mode contract check.
	durationSeconds := request.GetInt("durationSeconds", -1)
	if err := plain.ValidateSnooze(mode, durationSeconds); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.threadMutationHandler(ctx, request, func(ctx context.Context, threadID string) (*plain.Thread, error) {
		return s.client.SnoozeThread(ctx, threadID, mode, durationSeconds)
	})
}

func (s *Server) handleAddThreadLabels(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	threadID, err := request.RequireString("threadId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	labelTypeIDs, err := requireStringSliceArg(request, "labelTypeIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	labels, err := s.client.AddThreadLabels(ctx, threadID, labelTypeIDs)
	if err != nil {
		return apiError(err), nil
	}
	return jsonResult(labels)
}

func (s *Server) handleRemoveThreadLabels(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	threadID, err := request.RequireString("threadId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	labelIDs, err := requireStringSliceArg(request, "labelIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.client.RemoveThreadLabels(ctx, threadID, labelIDs); err != nil {
		return apiError(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Removed %d label(s) from thread %s.", len(labelIDs), threadID)), nil
}

func (s *Server) handleSetThreadTenant(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tenantIdentifier, err := request.RequireString("tenantIdentifier")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.threadMutationHandler(ctx, request, func(ctx context.Context, threadID string) (*plain.Thread, error) {
		return s.client.SetThreadTenant(ctx, threadID, tenantIdentifier)
	})
}

func (s *Server) handleCreateThreadLink(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	threadID, err := request.RequireString("threadId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	label := request.GetString("label", "")

	link, err := s.client.CreateThreadLink(ctx, threadID, url, label)
	if err != nil {
		return apiError(err), nil
	}
	return jsonResult(link)
}

func (s *Server) handleListThreadLabels(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	threadID, err := request.RequireString("threadId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	labels, err := s.client.ThreadLabels(ctx, threadID)
	if err != nil {
		return apiError(err), nil
	}
	if labels == nil {
		return mcp.NewToolResultText(fmt.Sprintf("No thread found with id %s.", threadID)), nil
	}
	if len(labels) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("Thread %s has no labels.", threadID)), nil
	}
	return jsonResult(labels)
}

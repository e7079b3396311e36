package plain

import "context"

const userFields = `
  id
  fullName
  publicName
  email
`

const usersQuery = `
query users($first: Int!) {
  users(first: $first) {
    edges {
      node {` + userFields + `}
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

// Users lists workspace users, first page only.
func (c *Client) Users(ctx context.Context, pageSize int) ([]User, PageInfo, error) {
	var resp struct {
		Users connection[User] `json:"users"`
	}
	if err := c.run(ctx, usersQuery, map[string]interface{}{"first": pageSize}, &resp); err != nil {
		return nil, PageInfo{}, err
	}
	return resp.Users.nodes(), resp.Users.PageInfo, nil
}

const userByEmailQuery = `
query userByEmail($email: String!) {
  userByEmail(email: $email) {` + userFields + `}
}`

// UserByEmail fetches a workspace user by email. Returns nil when no user
// matches.
func (c *Client) UserByEmail(ctx context.Context, email string) (*User, error) {
	var resp struct {
		User *User `json:"userByEmail"`
	}
	if err := c.run(ctx, userByEmailQuery, map[string]interface{}{"email": email}, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

const myWorkspaceQuery = `
query myWorkspace {
  myWorkspace {
    id
    name
    publicName
  }
}`

// MyWorkspace fetches the workspace the API key belongs to.
func (c *Client) MyWorkspace(ctx context.Context) (*Workspace, error) {
	var resp struct {
		MyWorkspace *Workspace `json:"myWorkspace"`
	}
	if err := c.run(ctx, myWorkspaceQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.MyWorkspace, nil
}

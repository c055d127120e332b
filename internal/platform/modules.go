package platform

import "context"

// FetchModules returns the raw module descriptors for the current
// tenant. Shapes vary between backend revisions, so entries are
// returned as raw maps for the module gate to normalize.
func (c *Client) FetchModules(ctx context.Context) ([]map[string]interface{}, error) {
	var raw []map[string]interface{}
	if err := c.doRequest(ctx, "GET", "/api/modules", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

package localize

// Localization schemas mirror the shape of the data they describe:
//
//	true                      the whole subtree is localized
//	{"key": <schema>, ...}    per-key schemas; keys absent from the schema
//	                          are structural and copied as-is
//	{"_item": <schema>}       array whose elements follow <schema>
//	{"_blocks": {<type>: S}}  identity composite; each values entry follows
//	                          the schema of its node's type
//
// Any other schema node means "not localized".

// itemSchema extracts the per-element schema of an array node.
func itemSchema(schema map[string]any) (any, bool) {
	item, ok := schema[schemaItemKey]
	return item, ok
}

// blockSchemas extracts the per-block-type schema map of a composite node.
func blockSchemas(schema map[string]any) (map[string]any, bool) {
	raw, ok := schema[schemaBlocksKey]
	if !ok {
		return nil, false
	}
	blocks, ok := raw.(map[string]any)
	return blocks, ok
}

// resolveNodeType finds the node with the given id in a composite tree and
// returns its type discriminator. The search is depth-first through nested
// children so detached value entries resolve no type.
func (e *Engine) resolveNodeType(tree []any, id string) (string, bool) {
	for _, raw := range tree {
		node, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if nodeID, ok := identityString(node[e.idKey]); ok && nodeID == id {
			if nodeType, ok := node[e.typeKey].(string); ok && nodeType != "" {
				return nodeType, true
			}
			return "", false
		}
		if children, ok := node[schemaChildrenKey].([]any); ok {
			if nodeType, found := e.resolveNodeType(children, id); found {
				return nodeType, true
			}
		}
	}
	return "", false
}

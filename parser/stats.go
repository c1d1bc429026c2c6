package parser

// DocumentStats summarizes the size of a parsed document.
type DocumentStats struct {
	PathCount           int // Number of path items
	OperationCount      int // Operations across all path items
	SchemaCount         int // definitions (2.0) or components.schemas (3.0)
	ParameterCount      int // Reusable parameters
	ResponseCount       int // Reusable responses
	RequestBodyCount    int // components.requestBodies; always 0 for 2.0
	SecuritySchemeCount int // securityDefinitions (2.0) or components.securitySchemes (3.0)
}

// GetDocumentStats returns statistics for a *OAS2Document or *OAS3Document.
// Any other value yields zero stats.
func GetDocumentStats(doc any) DocumentStats {
	var stats DocumentStats

	switch d := doc.(type) {
	case *OAS2Document:
		if d == nil {
			return stats
		}
		stats.PathCount, stats.OperationCount = countPaths(d.Paths)
		stats.SchemaCount = len(d.Definitions)
		stats.ParameterCount = len(d.Parameters)
		stats.ResponseCount = len(d.Responses)
		stats.SecuritySchemeCount = len(d.SecurityDefinitions)
	case *OAS3Document:
		if d == nil {
			return stats
		}
		stats.PathCount, stats.OperationCount = countPaths(d.Paths)
		if c := d.Components; c != nil {
			stats.SchemaCount = len(c.Schemas)
			stats.ParameterCount = len(c.Parameters)
			stats.ResponseCount = len(c.Responses)
			stats.RequestBodyCount = len(c.RequestBodies)
			stats.SecuritySchemeCount = len(c.SecuritySchemes)
		}
	}
	return stats
}

func countPaths(paths Paths) (pathCount, operationCount int) {
	for _, item := range paths {
		pathCount++
		if item != nil {
			operationCount += len(item.Operations())
		}
	}
	return pathCount, operationCount
}

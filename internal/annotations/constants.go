package annotations

// AnnotationPrefix starts every annotation comment body
const AnnotationPrefix = "axon::"

// Parameter names shared by the builtin schemas
const (
	ParamParam = "param"
	ParamValue = "value"
	ParamName  = "name"
	ParamKind  = "Kind"
	ParamAlias = "Name"
)

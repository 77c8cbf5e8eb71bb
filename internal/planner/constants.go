package planner

// File and directory names used by PathPlanner deploy directories.
const (
	// AutoExt is the extension of autonomous-routine documents
	AutoExt = ".auto"

	// PathExt is the extension of path documents
	PathExt = ".path"

	// AutosDirName is the directory holding .auto files under the root
	AutosDirName = "autos"

	// PathsDirName is the directory holding .path files under the root
	PathsDirName = "paths"

	// DeployDir is where a robot project keeps its PathPlanner root
	DeployDir = "src/main/deploy/pathplanner"

	// CommandTypePath marks an auto command that runs a path
	CommandTypePath = "path"
)

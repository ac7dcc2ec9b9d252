package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodBinaryTree is the canonical name for the BinaryTree constructor.
	MethodBinaryTree = "BinaryTree"
	// MethodRandomTree is the canonical name for the RandomTree constructor.
	MethodRandomTree = "RandomTree"
	// MethodRandomGNM is the canonical name for the RandomGNM constructor.
	MethodRandomGNM = "RandomGNM"
	// MethodBarabasiAlbert is the canonical name for the BarabasiAlbert constructor.
	MethodBarabasiAlbert = "BarabasiAlbert"
	// MethodRandomRegular is the canonical name for the RandomRegular constructor.
	MethodRandomRegular = "RandomRegular"
	// MethodBARandom is the canonical name for the BARandom constructor.
	MethodBARandom = "BARandom"
	// MethodLiMaini is the canonical name for the LiMaini constructor.
	MethodLiMaini = "LiMaini"
	// MethodDegreeBounded is the canonical name for the DegreeBounded constructor.
	MethodDegreeBounded = "DegreeBounded"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest path that has an edge.
const MinPathNodes = 2

// MinStarNodes is one hub plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is a hub plus a rim of three.
const MinWheelNodes = 4

// MinGridDim is the smallest lattice side. A 1×1 grid has no edges but is valid.
const MinGridDim = 1

// MinTreeNodes is the smallest tree (a single vertex).
const MinTreeNodes = 1

// MinSeedClique is the smallest initial clique for BarabasiAlbert; a single
// vertex has no degree to attach to.
const MinSeedClique = 2

//-----------------------------------------------------------------------------
// Retry bounds
//-----------------------------------------------------------------------------

// MaxConstructAttempts bounds the rejection loops of RandomRegular and
// DegreeBounded.
// Rejection of non-simple pairings is frequent for d ≥ 4 (acceptance
// ≈ exp(-(d²-1)/4)), so the bound is generous.
const MaxConstructAttempts = 1000

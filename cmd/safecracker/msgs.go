package main

// Message constants
const (
	MsgRootShort = "Recover the vault password from a dial rotation log"
	MsgRootLong  = `safecracker simulates a 100-position combination dial against a log of
rotation commands and reports how many individual clicks landed on
position 0. That count is the vault password.

The dial starts at position 50. Each input line is a single rotation of
the form <D><N>, where D is L or R and N is the number of clicks, e.g.
R3 or L120. Blank lines are ignored; malformed lines are skipped with a
warning.

Run it with no arguments to solve input.txt in the current directory.
See 'safecracker help dial' for how the counting works.`

	MsgSolveShort = "Simulate the rotation log and print the password"
	MsgSolveLong  = `Solve reads the rotation log, turns the dial click by click, and prints
the number of clicks that landed on position 0:

  Password: <count>

The input path comes from the positional argument, the --input flag, or
safecracker.toml, in that order of preference.`

	MsgSolveExample = `  # Solve input.txt from the current directory
  safecracker solve

  # Solve a specific file
  safecracker solve rotations.txt

  # Show each applied rotation while solving
  safecracker -vv solve`
)

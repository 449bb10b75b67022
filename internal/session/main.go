package session

// Runner runs the tests of a package. *testing.M satisfies it.
type Runner interface {
	Run() int
}

// Main starts the session and runs m. Use it from TestMain:
//
//	func TestMain(m *testing.M) {
//		s, err := session.New(config.New())
//		if err != nil {
//			fmt.Fprintln(os.Stderr, err)
//			os.Exit(1)
//		}
//		os.Exit(session.Main(m, s))
//	}
//
// When session start fails no test runs and the exit code is 1.
func Main(m Runner, s *Session) int {
	if err := s.OnSessionStart(); err != nil {
		s.Console.Error("Error: %v", err)
		return 1
	}
	code := m.Run()
	if err := s.Close(); err != nil {
		s.Logger.Warn("close session", "error", err)
	}
	return code
}

package shell

import "nvicshell/sparkos/irq"

func registerNVICCommands(r *registry) error {
	return r.register(command{
		Name:  irq.CommandName,
		Usage: "nvic_irq [num|priority|set <IRQn> <priority>]",
		Desc:  "Show NVIC interrupts or set a priority.",
		Run:   cmdNVIC,
	})
}

// Run writes its own usage and range messages; errors are only logged.
func cmdNVIC(s *Service, args []string) error {
	argv := append([]string{irq.CommandName}, args...)
	if err := s.nvic.Run(scrollbackWriter{s: s}, argv); err != nil {
		s.logf("shell: %v", err)
	}
	return nil
}

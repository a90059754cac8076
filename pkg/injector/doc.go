// Package injector builds state machines from declarative definitions.
//
// A definition names an initial state and lists states with optional
// entering and exiting notifications and action to target transitions.
// Three formats are supported and share the same shape.
//
// XML:
//
//	<fsm initial="closed">
//		<state name="closed" entering="door/closed">
//			<transition action="open" target="opened"/>
//		</state>
//		<state name="opened" exiting="door/closing">
//			<transition action="close" target="closed"/>
//		</state>
//	</fsm>
//
// YAML:
//
//	initial: closed
//	states:
//	  - name: closed
//	    entering: door/closed
//	    transitions:
//	      - {action: open, target: opened}
//	  - name: opened
//	    exiting: door/closing
//	    transitions:
//	      - {action: close, target: closed}
//
// JSON uses the same keys as YAML.
//
// Usage:
//
//	def, err := injector.LoadFile(ctx, "door.yaml")
//	if err != nil {
//		return err
//	}
//	machine, err := injector.New(def).Inject(ctx, f)
//
// Inject registers the machine with the given facade, which enters the
// initial state immediately.
package injector

/*
Package pause implements the gateway wide pause switch.

The switch is a single boolean gate with guarded transitions. All
mutating operations of the approval engine consult it and refuse to run
while it is set. The upgrade gate requires the inverse: the switch must
be engaged before a logic replacement is authorized.

Who may flip the switch is a configuration choice made at initialization
time: either any owner (the default), or only holders of the dedicated
pauser role.
*/
package pause

package urls

// Reference URLs shown in troubleshooting output and the interface header

// Project is the project home page.
const Project = "https://github.com/muurk/tvremote"

// Issues is where bugs and unsupported devices are reported.
const Issues = Project + "/issues"

// ECPReference documents the External Control Protocol spoken by Roku
// devices, including the device-info fields and key names.
const ECPReference = "https://developer.roku.com/docs/developer-program/dev-tools/external-control-api.md"
